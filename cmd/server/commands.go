package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/warp/pto-projector/api"
	"github.com/warp/pto-projector/config"
	"github.com/warp/pto-projector/generic"
	"github.com/warp/pto-projector/timeoff"
	"gopkg.in/yaml.v3"
)

// app is the state every command shares once configuration is loaded.
type app struct {
	cfg    config.Application
	engine *timeoff.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configPath string

	root := &cobra.Command{
		Use:           "server",
		Short:         "Project PTO and sick balances over planned vacation days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(0)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to YAML config file (missing file is ignored)")

	root.AddCommand(newServeCmd(a), newProjectCmd(a), newHolidaysCmd(a))
	return root
}

func (a *app) setup(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Log.ConfigureLogging(); err != nil {
		return err
	}

	calendar, err := timeoff.CalendarFor(cfg.Holidays.Source, cfg.Holidays.Year)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy.TimeoffPolicy()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.engine = timeoff.NewEngine(calendar, policy)
	log.WithFields(log.Fields{
		"holidays": cfg.Holidays.Source,
		"max_pto":  policy.MaxPTO.Display(),
		"floor":    policy.PTOFloor.Display(),
	}).Debug("engine configured")
	return nil
}

// holidayYear is the year the active calendar lists.
func (a *app) holidayYear() int {
	if a.cfg.Holidays.Source == timeoff.HolidaySourceUSFederal {
		return a.cfg.Holidays.Year
	}
	return timeoff.CompanyHolidayYear
}

// =============================================================================
// SERVE
// =============================================================================

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (overrides server.port)")
	return cmd
}

func (a *app) serve(port int) error {
	if port == 0 {
		port = a.cfg.Server.Port
	}

	handler := api.NewHandler(a.engine, a.cfg.Holidays.Source, a.holidayYear())
	router := api.NewRouter(handler, a.cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		log.Infof("Server starting on http://localhost:%d", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-failed:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// =============================================================================
// PROJECT
// =============================================================================

type projectOptions struct {
	pto      string
	sick     string
	ptoRate  string
	sickRate string
	dates    []string
	today    string
	output   string
}

func newProjectCmd(a *app) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print projected balances for each vacation date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.project(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pto, "pto", "0", "current PTO balance in hours")
	f.StringVar(&opts.sick, "sick", "0", "current sick balance in hours")
	f.StringVar(&opts.ptoRate, "pto-rate", "0", "PTO hours earned per hour worked")
	f.StringVar(&opts.sickRate, "sick-rate", "0", "sick hours earned per hour worked")
	f.StringArrayVar(&opts.dates, "date", nil, "vacation date YYYY-MM-DD (repeatable)")
	f.StringVar(&opts.today, "today", "", "start accruing from this date instead of today")
	f.StringVarP(&opts.output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func (a *app) project(w io.Writer, opts *projectOptions) error {
	var today generic.Date
	if opts.today != "" {
		d, err := generic.ParseDateStrict(opts.today)
		if err != nil {
			return fmt.Errorf("--today: %w", err)
		}
		today = d
	}

	resp := api.ProjectionResponse{Results: []api.SnapshotDTO{}}
	in, err := timeoff.ParseRawInput(timeoff.RawInput{
		CurrentPTO:  opts.pto,
		CurrentSick: opts.sick,
		PTORate:     opts.ptoRate,
		SickRate:    opts.sickRate,
		Dates:       opts.dates,
		Today:       today,
	})
	if err != nil {
		log.WithError(err).Debug("projection inputs did not parse")
	} else {
		resp = api.NewProjectionResponse(a.engine.Project(in))
		resp.SkippedDates = append(generic.NewDateSet(opts.dates...).Invalid(), resp.SkippedDates...)
	}

	switch opts.output {
	case "table":
		return writeProjectionTable(w, resp)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(resp)
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}

func writeProjectionTable(w io.Writer, resp api.ProjectionResponse) error {
	if len(resp.Results) == 0 {
		if _, err := fmt.Fprintln(w, "no projection"); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "DATE\tPTO\tSICK\tWORKDAYS\tPTO+\tSICK+\tPTO-\tSICK-\t")
		for _, r := range resp.Results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t\n",
				r.Date, r.PTOBalance, r.SickBalance, r.Workdays,
				r.PTOAccrued, r.SickAccrued, r.PTODeducted, r.SickDeducted)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, s := range resp.SkippedDates {
		fmt.Fprintf(w, "skipped date %q\n", s)
	}
	return nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func newHolidaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List the active holiday calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listHolidays(cmd.OutOrStdout())
		},
	}
}

func (a *app) listHolidays(w io.Writer) error {
	fmt.Fprintf(w, "%s holidays, %d\n", a.cfg.Holidays.Source, a.holidayYear())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, h := range a.engine.Holidays.Holidays() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", generic.FormatDate(h.Date), h.Date.Weekday().String()[:3], h.Name)
	}
	return tw.Flush()
}
