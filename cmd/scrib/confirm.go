package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirm asks the user a yes/no question on stdout and reads the answer
// from stdin. Anything other than "y" counts as no.
func confirm(prompt string) bool {
	return confirmFrom(os.Stdin, prompt)
}

func confirmFrom(r io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	answer, _ := bufio.NewReader(r).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
