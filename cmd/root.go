package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/foxdog-studios/ddpclean/internal/clean"
	"github.com/foxdog-studios/ddpclean/internal/config"
)

var (
	// Global flags
	debug  bool
	dryRun bool
	deep   bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = fmt.Sprintf("%s (%s) built %s", appVersion, appCommit, appDate)
}

// resolveRoot locates the project root. Swapped out in tests.
var resolveRoot = config.ProjectRoot

var rootCmd = &cobra.Command{
	Use:   "ddpclean",
	Short: "Remove pyddp build artifacts and caches",
	Long: `ddpclean - Remove pyddp build artifacts and caches.

Deletes coverage data, build/dist output, packaging metadata, documentation
builds, and compiled cache files from the project tree. The tree is located
relative to the ddpclean binary itself, so it can be run from anywhere.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags parsed cleanly past this point; runtime failures
		// should report the error without dumping usage.
		cmd.SilenceUsage = true

		setupLogging()

		root, err := resolveRoot()
		if err != nil {
			return err
		}
		log.Debug().Str("root", root).Msg("resolved project root")

		res, err := clean.Run(clean.Options{Root: root, Deep: deep, DryRun: dryRun})
		if err != nil {
			return err
		}

		printSummary(cmd, root, res)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&deep, "deep", "d", false, "Also remove the local virtual environment (local/venv)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
}

// setupLogging writes human-readable logs to stderr, colored only when it is
// a terminal. Anything below warning is dropped unless --debug is set.
func setupLogging() {
	w := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}
	log.Logger = log.Output(w)

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// ─── Run Summary ─────────────────────────────────────────────────────────────

var (
	markStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	totalStyle = lipgloss.NewStyle().Bold(true)
)

// printSummary renders what the run removed and how much space came back.
func printSummary(cmd *cobra.Command, root string, res *clean.Result) {
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}

	if len(res.Removed) == 0 {
		cmd.Printf("%s Nothing to clean\n", markStyle.Render("✓"))
		return
	}

	for _, rm := range res.Removed {
		rel, err := filepath.Rel(root, rm.Path)
		if err != nil {
			rel = rm.Path
		}
		cmd.Printf("%s %s %s (%s, %s)\n",
			markStyle.Render("✓"), verb,
			pathStyle.Render(rel), rm.Description, humanSize(rm.Size))
	}

	cmd.Println(totalStyle.Render(fmt.Sprintf("%s reclaimed", humanSize(res.TotalBytes))))
	if usage, err := disk.Usage(root); err == nil {
		cmd.Printf("%s free on volume\n", humanSize(int64(usage.Free)))
	}
}

// humanSize formats a byte count with a binary-unit suffix.
func humanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
