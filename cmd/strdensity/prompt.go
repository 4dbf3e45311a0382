package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// interactivePrompt gathers the input paths from the operator when they
// were not provided on the command line.
func interactivePrompt() (gtfPath, bedPath string, err error) {
	fmt.Fprintln(os.Stderr, "Welcome to the STR Density Calculator.")
	fmt.Fprintln(os.Stderr, "This program calculates STR density for each gene in the provided GTF and BED files.")

	reader := bufio.NewReader(os.Stdin)

	gtfPath, err = promptLine(reader, "Enter the path to your GTF file: ")
	if err != nil {
		return "", "", err
	}

	bedPath, err = promptLine(reader, "Enter the path to your BED file: ")
	if err != nil {
		return "", "", err
	}

	return gtfPath, bedPath, nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no path entered")
	}
	return line, nil
}
