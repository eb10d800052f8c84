package protocol

import (
	"os"
	"slices"
	"strings"
	"sync"
)

const (
	// PackageSeparator joins the entries of PackageList.String.
	PackageSeparator = "|"

	// PackagesEnv is the environment variable DefaultPackages is seeded
	// from.
	PackagesEnv = "URLPROTO_HANDLER_PKGS"
)

// DefaultPackages is the process-wide handler package list.
var DefaultPackages = NewPackageList(os.Getenv(PackagesEnv))

// PackageList is an ordered list of package prefixes searched for
// handlers. Entries are appended once and never removed. It is safe for
// concurrent use.
type PackageList struct {
	mu   sync.RWMutex
	pkgs []string
}

// NewPackageList parses a list delimited by "|" or ":". Empty entries and
// duplicates are dropped.
func NewPackageList(value string) *PackageList {
	l := &PackageList{}

	for _, prefix := range strings.FieldsFunc(value, isPackageSeparator) {
		l.AddOnce(prefix)
	}

	return l
}

func isPackageSeparator(r rune) bool {
	return r == '|' || r == ':'
}

// AddOnce appends prefix unless it is already present. It reports
// whether the list changed.
func (l *PackageList) AddOnce(prefix string) bool {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.pkgs, prefix) {
		return false
	}

	l.pkgs = append(l.pkgs, prefix)

	return true
}

// Contains reports whether prefix is in the list.
func (l *PackageList) Contains(prefix string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Contains(l.pkgs, prefix)
}

// Packages returns a copy of the list in registration order.
func (l *PackageList) Packages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.pkgs)
}

// Len returns the number of entries.
func (l *PackageList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.pkgs)
}

func (l *PackageList) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return strings.Join(l.pkgs, PackageSeparator)
}
