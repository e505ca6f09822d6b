package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/deeday/internal/config"
	"github.com/theirongolddev/deeday/internal/store"
	"github.com/theirongolddev/deeday/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues is bound to the wizard's fields.
type setupValues struct {
	theme    string
	backend  string
	sort     string
	upcoming string
}

func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to deeday!").
				Description("A few choices and you're ready to track birthdays."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.theme),
			huh.NewSelect[string]().
				Title("Where should the roster be stored?").
				Options(
					huh.NewOption("SQLite database (deeday.db)", store.BackendSQLite),
					huh.NewOption("Plain JSON file (familyMembers.json)", store.BackendFile),
				).
				Value(&v.backend),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("List order").
				Options(
					huh.NewOption("In the order they were added", config.SortAdded),
					huh.NewOption("Next birthday first", config.SortUpcoming),
				).
				Value(&v.sort),
			huh.NewInput().
				Title("Upcoming window (days)").
				Value(&v.upcoming).
				Validate(validateUpcoming),
		),
	)
}

func validateUpcoming(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 366 {
		return errors.New("enter a number of days between 1 and 366")
	}
	return nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	v := setupValues{
		theme:    cfg.Appearance.Theme,
		backend:  cfg.General.Backend,
		sort:     cfg.Display.Sort,
		upcoming: strconv.Itoa(cfg.Display.UpcomingDays),
	}

	if err := newSetupForm(&v).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	applySetup(&cfg, v)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `deeday setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func applySetup(cfg *config.Config, v setupValues) {
	cfg.Appearance.Theme = theme.ByName(v.theme).Name
	if v.backend == store.BackendSQLite || v.backend == store.BackendFile {
		cfg.General.Backend = v.backend
	}
	if v.sort == config.SortAdded || v.sort == config.SortUpcoming {
		cfg.Display.Sort = v.sort
	}
	if n, err := strconv.Atoi(v.upcoming); err == nil && n > 0 {
		cfg.Display.UpcomingDays = n
	}
}
