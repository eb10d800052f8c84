package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/urlproto/protocol"
	"github.com/vitalvas/urlproto/urlspec"
	"gopkg.in/yaml.v3"
)

func newReformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reform SPEC",
		Short: "Print SPEC with its sub-protocol moved into a matrix parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), urlspec.ReformSpec(args[0]))
			return err
		},
	}
}

// parsedURL is the YAML shape printed by the parse command.
type parsedURL struct {
	Scheme       string              `yaml:"scheme"`
	SubProtocols []string            `yaml:"sub_protocols,omitempty"`
	User         string              `yaml:"user,omitempty"`
	Host         string              `yaml:"host,omitempty"`
	Path         string              `yaml:"path,omitempty"`
	Matrix       map[string][]string `yaml:"matrix,omitempty"`
	Query        map[string][]string `yaml:"query,omitempty"`
	Fragment     string              `yaml:"fragment,omitempty"`
	Reformed     string              `yaml:"reformed"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse SPEC",
		Short: "Print the components of SPEC as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := describe(args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

func describe(spec string) (*parsedURL, error) {
	u, err := urlspec.Parse(spec)
	if err != nil {
		return nil, err
	}

	subs, err := urlspec.SubProtocols(u)
	if err != nil {
		return nil, err
	}

	rawPath := urlspec.StripMatrix(u.EscapedPath(), urlspec.MatrixParam)

	matrix, err := urlspec.Matrix(rawPath)
	if err != nil {
		return nil, err
	}

	path, err := segmentPath(rawPath)
	if err != nil {
		return nil, err
	}

	p := &parsedURL{
		Scheme:       u.Scheme,
		SubProtocols: subs,
		Host:         u.Host,
		Path:         path,
		Fragment:     u.Fragment,
		Reformed:     u.String(),
	}

	if u.User != nil {
		p.User = u.User.Username()
	}

	if len(matrix) > 0 {
		p.Matrix = matrix
	}

	if q := u.Query(); len(q) > 0 {
		p.Query = q
	}

	return p, nil
}

// segmentPath drops the matrix parameters of every segment of an escaped
// path and decodes the rest.
func segmentPath(escaped string) (string, error) {
	segments := strings.Split(escaped, "/")
	for i, segment := range segments {
		segments[i], _, _ = strings.Cut(segment, ";")
	}

	return url.PathUnescape(strings.Join(segments, "/"))
}

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat SPEC",
		Short: "Open SPEC through its protocol handler and copy it to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, _, err := protocol.Open(cmd.Context(), a.factory, args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			_, err = io.Copy(cmd.OutOrStdout(), rc)

			return err
		},
	}
}

func newPackagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "Print the handler package list in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, prefix := range a.catalog.Packages().Packages() {
				if _, err := fmt.Fprintln(out, prefix); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintln(out, protocol.BuiltinPackage)

			return err
		},
	}
}
