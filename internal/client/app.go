// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/adapter"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

// App dispatches subcommands to the server adapter.
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	errOut  io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds an [App] that writes results to out and usage text to errOut.
func NewApp(serverAdapter adapter.ServerAdapter, out, errOut io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		out:     out,
		errOut:  errOut,
		logger:  logger,
	}

	a.commands = map[string]command{
		"register":  {usage: "-name NAME -email EMAIL -password PASSWORD", run: a.register},
		"login":     {usage: "-email EMAIL -password PASSWORD", run: a.login},
		"me":        {usage: "", run: a.me},
		"upload":    {usage: "-file PATH -category CATEGORY -date DATE [-vitals JSON] [-type MIME]", run: a.upload},
		"list":      {usage: "[-category C] [-from DATE] [-to DATE] [-vital TYPE]", run: a.list},
		"get":       {usage: "-id REPORT_ID", run: a.get},
		"download":  {usage: "-id REPORT_ID [-out PATH]", run: a.download},
		"delete":    {usage: "-id REPORT_ID", run: a.delete},
		"share":     {usage: "-report REPORT_ID -email EMAIL", run: a.share},
		"shares":    {usage: "-report REPORT_ID", run: a.shares},
		"revoke":    {usage: "-report REPORT_ID -share SHARE_ID", run: a.revoke},
		"add-vital": {usage: "-type TYPE -value N [-unit UNIT] -date DATE", run: a.addVital},
		"vitals":    {usage: "[-type TYPE] [-from DATE] [-to DATE]", run: a.vitals},
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "usage: %s %s\n", name, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, fs, args[1:])
}

// Usage prints the list of subcommands.
func (a *App) Usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-10s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := a.adapter.Register(ctx, models.User{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}
	return a.print(auth)
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := a.adapter.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	return a.print(auth)
}

func (a *App) me(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(models.MeResponse{User: user})
}

func (a *App) upload(ctx context.Context, fs *flag.FlagSet, args []string) error {
	path := fs.String("file", "", "path of the report file")
	category := fs.String("category", "", "report category")
	date := fs.String("date", "", "report date")
	vitals := fs.String("vitals", "", "vitals JSON object")
	contentType := fs.String("type", "", "content type, guessed from the extension when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return missingFlag(fs, "file")
	}

	f, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat report file: %w", err)
	}

	if *contentType == "" {
		*contentType = contentTypeByName(*path)
	}

	report, err := a.adapter.UploadReport(ctx, models.ReportUpload{
		Category: *category,
		Date:     *date,
		Vitals:   *vitals,
		File: &models.UploadedFile{
			Name:        filepath.Base(*path),
			ContentType: *contentType,
			Size:        info.Size(),
			Content:     f,
		},
	})
	if err != nil {
		return err
	}
	return a.print(report)
}

func (a *App) list(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var filter models.ReportFilter
	fs.StringVar(&filter.Category, "category", "", "exact category")
	fs.StringVar(&filter.DateFrom, "from", "", "earliest report date")
	fs.StringVar(&filter.DateTo, "to", "", "latest report date")
	fs.StringVar(&filter.VitalType, "vital", "", "vital type key present in the payload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reports, err := a.adapter.ListReports(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(reports)
}

func (a *App) get(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "report id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return missingFlag(fs, "id")
	}

	report, err := a.adapter.GetReport(ctx, *id)
	if err != nil {
		return err
	}
	return a.print(report)
}

// download writes into a temporary file next to the target and renames it
// once the body is complete, so a failed transfer leaves nothing behind.
func (a *App) download(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "report id")
	out := fs.String("out", "", "output path, the server filename in the current directory when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return missingFlag(fs, "id")
	}

	dir := "."
	if *out != "" {
		dir = filepath.Dir(*out)
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	name, err := a.adapter.DownloadReport(ctx, *id, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = fmt.Sprintf("report-%d", *id)
		if base := filepath.Base(name); name != "" && base != "." && base != string(filepath.Separator) {
			target = base
		}
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("save download: %w", err)
	}

	fmt.Fprintln(a.out, target)
	return nil
}

func (a *App) delete(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "report id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return missingFlag(fs, "id")
	}

	if err := a.adapter.DeleteReport(ctx, *id); err != nil {
		return err
	}
	return a.print(models.OKResponse{OK: true})
}

func (a *App) share(ctx context.Context, fs *flag.FlagSet, args []string) error {
	reportID := fs.Int64("report", 0, "report id")
	email := fs.String("email", "", "email of the user to grant access")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *reportID <= 0 {
		return missingFlag(fs, "report")
	}

	if err := a.adapter.GrantShare(ctx, *reportID, *email); err != nil {
		return err
	}
	return a.print(models.OKResponse{OK: true})
}

func (a *App) shares(ctx context.Context, fs *flag.FlagSet, args []string) error {
	reportID := fs.Int64("report", 0, "report id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *reportID <= 0 {
		return missingFlag(fs, "report")
	}

	entries, err := a.adapter.ListShares(ctx, *reportID)
	if err != nil {
		return err
	}
	return a.print(entries)
}

func (a *App) revoke(ctx context.Context, fs *flag.FlagSet, args []string) error {
	reportID := fs.Int64("report", 0, "report id")
	shareID := fs.Int64("share", 0, "share id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *reportID <= 0 {
		return missingFlag(fs, "report")
	}
	if *shareID <= 0 {
		return missingFlag(fs, "share")
	}

	if err := a.adapter.RevokeShare(ctx, *reportID, *shareID); err != nil {
		return err
	}
	return a.print(models.OKResponse{OK: true})
}

func (a *App) addVital(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var input models.VitalInput
	fs.StringVar(&input.Type, "type", "", "vital type")
	fs.StringVar(&input.Unit, "unit", "", "unit of measurement")
	fs.StringVar(&input.Date, "date", "", "measurement date")
	value := fs.String("value", "", "numeric value")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// An empty value is sent as null so the server reports the missing field.
	if *value != "" {
		v, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			return fmt.Errorf("invalid -value %q: %w", *value, err)
		}
		input.Value = &v
	}

	vital, err := a.adapter.CreateVital(ctx, input)
	if err != nil {
		return err
	}
	return a.print(vital)
}

func (a *App) vitals(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var filter models.VitalFilter
	fs.StringVar(&filter.Type, "type", "", "exact vital type")
	fs.StringVar(&filter.DateFrom, "from", "", "earliest date")
	fs.StringVar(&filter.DateTo, "to", "", "latest date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vitals, err := a.adapter.ListVitals(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(vitals)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func missingFlag(fs *flag.FlagSet, name string) error {
	fs.Usage()
	return fmt.Errorf("%w: -%s", ErrMissingFlag, name)
}

func contentTypeByName(name string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		return "application/octet-stream"
	}
	// mime may append parameters such as "; charset=utf-8".
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mediaType
}
