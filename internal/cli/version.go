package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lazypower/wordbook/internal/store"
	"github.com/lazypower/wordbook/internal/vocab"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and data file information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

// runVersion reports the build and where wordbook keeps its data. It never
// creates the data or cache files.
func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wordbook %s (commit: %s, built: %s)\n", Version, Commit, BuildDate)

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(a.file.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(out, "data:  %s (not created)\n", a.file.Path)
	case err != nil:
		fmt.Fprintf(out, "data:  %s (unreadable: %v)\n", a.file.Path, err)
	default:
		if st, err := vocab.Decode(data); err != nil {
			fmt.Fprintf(out, "data:  %s (corrupt)\n", a.file.Path)
		} else {
			fmt.Fprintf(out, "data:  %s (%d words)\n", a.file.Path, st.Len())
		}
	}

	if !a.cfg.Dictionary.Cache {
		fmt.Fprintln(out, "cache: disabled")
		return nil
	}
	path := a.cfg.Data.CachePath
	if path == "" {
		if path, err = store.DefaultDBPath(); err != nil {
			return fmt.Errorf("resolve cache path: %w", err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "cache: %s (not created)\n", path)
		return nil
	}
	db, err := store.Open(path)
	if err != nil {
		fmt.Fprintf(out, "cache: %s (unavailable: %v)\n", path, err)
		return nil
	}
	defer db.Close()
	n, err := db.CountDefinitions()
	if err != nil {
		return fmt.Errorf("count definitions: %w", err)
	}
	fmt.Fprintf(out, "cache: %s (%d definitions, provider %s)\n", path, n, a.cfg.Dictionary.Provider)
	return nil
}

// VersionString returns a formatted version string for use in health checks etc.
func VersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
