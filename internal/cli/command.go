package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/people-registry/internal/config"
	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

type rootOptions struct {
	configPath string
	format     string
	file       string

	session *Session
}

// NewRootCommand builds the people-registry command tree. Input and output
// follow cmd.InOrStdin and cmd.OutOrStdout, so callers can redirect both
// with SetIn and SetOut.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "people-registry",
		Short: "Manage students, football players and lawyers stored in flat files",
		Long: `people-registry keeps collections of person records in a single data
file. The file format is one of binary, xml, json, text or sqlite and can be
changed from the interactive menu.

Without a subcommand the interactive menu starts.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		RunE:              opts.runMenu,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the configuration YAML file (or CONFIG_PATH)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "storage format ("+formatNames()+"), overrides the config")
	root.PersistentFlags().StringVar(&opts.file, "file", "", "data file path, overrides the config")

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Start the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  opts.runMenu,
		},
		&cobra.Command{
			Use:   "list <student|football-player|lawyer>",
			Short: "Print every stored record of one type",
			Example: `  people-registry list student
  people-registry --format text --file people.txt list lawyer`,
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"student", "football-player", "lawyer"},
			RunE:      opts.runList,
		},
		&cobra.Command{
			Use:   "served",
			Short: "Print fifth-year students who hold a military ID",
			Args:  cobra.NoArgs,
			RunE:  opts.runServed,
		},
	)

	return root
}

func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ResolvePath(o.configPath))
	if err != nil {
		return err
	}

	slog.SetDefault(SetupLogger(cfg.Env, cmd.ErrOrStderr()))

	if o.format != "" {
		cfg.Storage.Format = o.format
		if o.file == "" {
			cfg.Storage.Path = ""
		}
	}
	if o.file != "" {
		cfg.Storage.Path = o.file
	}

	format, err := cfg.StorageFormat()
	if err != nil {
		return err
	}
	path, err := cfg.DataPath()
	if err != nil {
		return err
	}

	slog.Debug("config loaded",
		slog.String("env", cfg.Env),
		slog.Bool("lock_files", cfg.LockFiles))

	o.session, err = NewSession(format, path, cfg.LockFiles)
	return err
}

func (o *rootOptions) runMenu(cmd *cobra.Command, _ []string) error {
	return NewMenu(o.session, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

func (o *rootOptions) runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch args[0] {
	case "student":
		return listAll[types.StudentDTO](out, "List of Students", o.session.Students)
	case "football-player":
		return listAll[types.FootballPlayerDTO](out, "List of FootballPlayers", o.session.FootballPlayers)
	case "lawyer":
		return listAll[types.LawyerDTO](out, "List of Lawyers", o.session.Lawyers)
	default:
		return fmt.Errorf("unknown record type %q", args[0])
	}
}

func (o *rootOptions) runServed(cmd *cobra.Command, _ []string) error {
	students, err := o.session.Students.FindFifthYearRecordsWhoServed()
	if err != nil {
		return err
	}
	writeList(cmd.OutOrStdout(), fmt.Sprintf("Fifth-Year Students Who Served (Total: %d)", len(students)), students)
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(storage.Formats))
	for _, f := range storage.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
