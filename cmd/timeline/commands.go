package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/store/filestore"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errUsage is returned for malformed command lines
var errUsage = errors.New("usage: timeline [-dir DIR] [-tz ZONE] [-v] profiles|points|amount|series [flags]")

type app struct {
	store      *filestore.Store
	projection *services.ProjectionService
	location   *time.Location
	out        io.Writer
}

func defaultDir() string {
	if dir := os.Getenv("PROFILE_STORE_DIR"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".budget-planner")
	}
	return ".budget-planner"
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("timeline", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	dir := global.String("dir", defaultDir(), "profile store directory")
	tz := global.String("tz", "", "time zone of calendar days (default local)")
	verbose := global.Bool("v", false, "log debug output to stderr")
	if err := global.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if global.NArg() == 0 {
		return errUsage
	}

	logCfg := logger.Config{Level: zapcore.WarnLevel, Format: logger.FormatConsole}
	if *verbose {
		logCfg.Level = zapcore.DebugLevel
	}
	logger.Init(logCfg)
	defer logger.Sync()

	location := time.Local
	if *tz != "" {
		loc, err := time.LoadLocation(*tz)
		if err != nil {
			return errors.Wrapf(err, "invalid time zone %q", *tz)
		}
		location = loc
	}

	store := filestore.New(*dir, location)
	a := &app{
		store: store,
		// one-shot process, nothing to reuse across calls
		projection: services.NewProjectionService(store, location, time.Minute),
		location:   location,
		out:        out,
	}
	logger.Debug("Running command", zap.String("command", global.Arg(0)), zap.String("dir", *dir))

	cmdArgs := global.Args()[1:]
	switch global.Arg(0) {
	case "profiles":
		return a.profiles(ctx)
	case "points":
		return a.points(ctx, cmdArgs)
	case "amount":
		return a.amount(ctx, cmdArgs)
	case "series":
		return a.series(ctx, cmdArgs)
	default:
		return errors.Wrapf(errUsage, "unknown command %q", global.Arg(0))
	}
}

// target holds the profile and timeline flags shared by projection commands
type target struct {
	profile  string
	timeline string
}

func newFlagSet(name string, t *target) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&t.profile, "profile", "", "profile name (default profile when empty)")
	fs.StringVar(&t.timeline, "timeline", business.DefaultTimelineName, "timeline name")
	return fs
}

// resolve fills in the default profile
func (a *app) resolve(ctx context.Context, t *target) error {
	if t.profile != "" {
		return nil
	}
	profiles, err := a.store.ListProfiles(ctx)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if p.IsDefault {
			t.profile = p.Name
			return nil
		}
	}
	return errors.New("no default profile, pass -profile")
}

func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) profiles(ctx context.Context) error {
	profiles, err := a.store.ListProfiles(ctx)
	if err != nil {
		return err
	}
	return a.print(responses.ListResponse{Object: "list", Data: helpers.ToProfileSummaryResponses(profiles)})
}

func (a *app) points(ctx context.Context, args []string) error {
	var t target
	fs := newFlagSet("points", &t)
	fromFlag := fs.String("from", "", "first day")
	toFlag := fs.String("to", "", "last day")
	previous := fs.Bool("previous", false, "include the last point before -from")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if err := a.resolve(ctx, &t); err != nil {
		return err
	}

	from, err := helpers.ParseOptionalDate(*fromFlag, a.location)
	if err != nil {
		return err
	}
	to, err := helpers.ParseOptionalDate(*toFlag, a.location)
	if err != nil {
		return err
	}

	points, err := a.projection.Points(ctx, t.profile, t.timeline, from, to, *previous)
	if err != nil {
		return err
	}
	return a.print(responses.ProjectionResponse{
		Object:   "list",
		Profile:  t.profile,
		Timeline: t.timeline,
		Data:     helpers.ToPointResponses(points),
	})
}

func (a *app) amount(ctx context.Context, args []string) error {
	var t target
	fs := newFlagSet("amount", &t)
	dateFlag := fs.String("date", "", "day to project")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if *dateFlag == "" {
		return errors.Wrap(errUsage, "amount requires -date")
	}
	if err := a.resolve(ctx, &t); err != nil {
		return err
	}

	date, err := helpers.ParseDate(*dateFlag, a.location)
	if err != nil {
		return err
	}
	amount, err := a.projection.AmountAt(ctx, t.profile, t.timeline, date)
	if err != nil {
		return err
	}
	return a.print(responses.AmountResponse{
		Object:   "amount",
		Profile:  t.profile,
		Timeline: t.timeline,
		Date:     date.Format(business.DateLayout),
		Amount:   amount,
	})
}

func (a *app) series(ctx context.Context, args []string) error {
	var t target
	fs := newFlagSet("series", &t)
	fromFlag := fs.String("from", "", "first sample")
	toFlag := fs.String("to", "", "last day")
	step := fs.Int("step", 1, "days between samples")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if *fromFlag == "" || *toFlag == "" {
		return errors.Wrap(errUsage, "series requires -from and -to")
	}
	if err := a.resolve(ctx, &t); err != nil {
		return err
	}

	from, err := helpers.ParseDate(*fromFlag, a.location)
	if err != nil {
		return err
	}
	to, err := helpers.ParseDate(*toFlag, a.location)
	if err != nil {
		return err
	}
	samples, err := a.projection.Series(ctx, t.profile, t.timeline, from, to, *step)
	if err != nil {
		return err
	}
	return a.print(responses.SeriesResponse{
		Object:   "list",
		Profile:  t.profile,
		Timeline: t.timeline,
		StepDays: *step,
		Data:     helpers.ToSampleResponses(samples),
	})
}
