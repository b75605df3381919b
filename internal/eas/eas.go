// Package eas triggers EAS builds through the eas command-line tool.
package eas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/expotools/expourl/internal/log"
	"github.com/fatih/color"
)

// DefaultProfile is the EAS build profile used when none is configured.
const DefaultProfile = "preview"

// New creates a [Trigger] configured with the provided options.
func New(ops ...Option) *Trigger {
	defaults := []Option{
		WithOutput(os.Stdout),
		WithProfile(DefaultProfile),
		WithLogger(log.Discard),
	}

	var t Trigger
	for _, op := range slices.Concat(defaults, ops) {
		op(&t)
	}

	if t.run == nil {
		t.run = &execRunner{out: t.out}
	}
	return &t
}

// WithRunner sets the runner used to execute the eas tool.
func WithRunner(r Runner) Option {
	return func(t *Trigger) {
		t.run = r
	}
}

// WithOutput sets the writer progress messages are printed to.
func WithOutput(w io.Writer) Option {
	return func(t *Trigger) {
		t.out = w
	}
}

// WithProfile sets the EAS build profile.
func WithProfile(profile string) Option {
	return func(t *Trigger) {
		t.profile = profile
	}
}

// WithLogger sets the logger for diagnostic messages.
func WithLogger(l *log.Logger) Option {
	return func(t *Trigger) {
		t.log = l
	}
}

type Option func(*Trigger)

// Runner executes an external command, streaming its output to the user.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Trigger starts EAS builds for the requested platforms.
type Trigger struct {
	run Runner

	out     io.Writer
	profile string

	log *log.Logger
}

// Run triggers a build for every requested platform, in order.
// It stops at the first platform that fails to build.
func (t *Trigger) Run(ctx context.Context, platforms []string) error {
	banner := color.New(color.FgCyan, color.Bold)
	banner.Fprintln(t.out, "🚀 EAS Build Trigger")
	banner.Fprintln(t.out, "====================")
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "📱 Build profile: %v\n", t.profile)

	for _, p := range platforms {
		if err := t.build(ctx, p); err != nil {
			return err
		}
	}

	t.printNextSteps()
	return nil
}

func (t *Trigger) build(ctx context.Context, platform string) error {
	fmt.Fprintf(t.out, "\n🚀 Starting %v build...\n", strings.ToUpper(platform))

	// Android builds prompt for keystore generation and cannot run non-interactively
	if platform == "android" {
		fmt.Fprintln(t.out, "⚠️  Note: For Android, you need to manually accept the keystore generation.")
		fmt.Fprintf(t.out, "   Please run: eas build --profile %v --platform android\n", t.profile)
		fmt.Fprintln(t.out, "   And select 'Yes' when prompted to generate a keystore")
		return errors.New("android builds require an interactive keystore prompt")
	}

	t.log.Info("Triggering a build", log.Fields{"platform": platform, "profile": t.profile})

	err := t.run.Run(ctx, "eas",
		"build",
		"--profile", t.profile,
		"--platform", platform,
		"--non-interactive",
	)
	if err != nil {
		return fmt.Errorf("trigger %v build: %w", platform, err)
	}
	return nil
}

func (t *Trigger) printNextSteps() {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, "📝 Next steps:")
	fmt.Fprintln(t.out, "1. Monitor builds in the EAS dashboard")
	fmt.Fprintln(t.out, "2. Download and install builds when ready")
	fmt.Fprintln(t.out, "3. Test against your local development server")
}

type execRunner struct {
	out io.Writer
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.out
	cmd.Stderr = r.out
	return cmd.Run()
}
