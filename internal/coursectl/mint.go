// Package coursectl implements the operator tool that mints bearer tokens
// for caller principals. The server never issues tokens itself; operators
// hand them out with this tool using the same HMAC secret the server
// verifies with.
package coursectl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"courseledger/internal/server/auth"
)

// SecretEnvVar names the environment variable checked for the signing
// secret before falling back to an interactive prompt.
const SecretEnvVar = "COURSELEDGER_SECRET"

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type Options struct {
	Principal string
	Validity  time.Duration
}

// GetSecret prints a prompt to w and reads the signing secret from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetSecret(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter signing secret: "); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// Mint signs a token carrying the principal.
func Mint(principal string, secret []byte, validity time.Duration) (string, error) {
	if principal == "" {
		return "", errors.New("principal is required")
	}
	if len(secret) == 0 {
		return "", errors.New("signing secret is empty")
	}
	return auth.GenerateToken(principal, secret, validity)
}

// Run resolves the secret (environment first, interactive prompt second),
// mints a token per opts and writes it to out.
func Run(opts Options, out, prompt io.Writer) error {
	secret := []byte(os.Getenv(SecretEnvVar))
	if len(secret) == 0 {
		var err error
		secret, err = GetSecret(prompt)
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}
	}

	token, err := Mint(opts.Principal, secret, opts.Validity)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
