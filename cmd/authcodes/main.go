// Command authcodes prints the salted SHA-256 digests the verification
// dataset lists under codesSha256, one per input code.
//
//	authcodes --salt s3cret CODE1 CODE2
//	cat codes.txt | authcodes --salt s3cret
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"dnalab/internal/verifier"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("authcodes", pflag.ContinueOnError)
	salt := fs.String("salt", "", "salt prepended to every code before hashing")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := run(os.Stdout, os.Stdin, *salt, fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "authcodes: %v\n", err)
		os.Exit(1)
	}
}

// run hashes args, or every non-blank line of in when no args are given
func run(out io.Writer, in io.Reader, salt string, args []string) error {
	if len(args) > 0 {
		for _, code := range args {
			if err := emit(out, salt, code); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := emit(out, salt, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func emit(out io.Writer, salt, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	_, err := fmt.Fprintln(out, verifier.HashCode(salt, code))
	return err
}
