// Command octavosum prints per-file digests using any of octavo's hash
// algorithms, selected with -D.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/libOctavo/octavo/digest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var algName string
	cmd := &cobra.Command{
		Use:   "octavosum [FILE ...]",
		Short: "Print digests of files using one of octavo's hash algorithms",
		Long: `octavosum prints "<hex-digest> <path>" for every FILE, or for
standard input when FILE is "-" or omitted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			ctor, err := digestConstructor(algName)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				paths = []string{"-"}
			}

			failed := false
			for _, path := range paths {
				if err := sumOne(ctor, path, stdin, stdout, logger); err != nil {
					logger.Error("failed to sum file", "path", path, "error", err)
					failed = true
				}
			}
			if failed {
				return errors.New("one or more files could not be hashed")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "digest", "D", "SHA-256", "digest algorithm to use")
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func sumOne(newDigest func() digest.Digest, path string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	d := newDigest()

	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	out := make([]byte, d.OutputBytes())
	d.Result(out)
	fmt.Fprintf(stdout, "%s %s\n", hex.EncodeToString(out), path)
	logger.Debug("summed file", "path", path)
	return nil
}
