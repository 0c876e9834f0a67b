package commands

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
	"github.com/thoreinstein/osdetect/internal/render"
	"github.com/thoreinstein/osdetect/pkg/fileutil"
)

// outputFlags are shared by commands that print an osinfo.Info.
type outputFlags struct {
	format string
	file   string
}

func (o *outputFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&o.format, "output", "o", "",
		"output format: "+strings.Join(render.Formats(), ", ")+" (default from config, else text)")
	c.Flags().StringVar(&o.file, "output-file", "",
		"write the result to this file instead of stdout")
}

// resolve returns the output format from the flag, then the config file.
func (o *outputFlags) resolve() (render.Format, error) {
	name := o.format
	if name == "" && cfg != nil {
		name = cfg.Output
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return "", errors.NewUserError(err, "Use -o with one of: "+strings.Join(render.Formats(), ", "))
	}
	return f, nil
}

// write renders info to stdout, or atomically to --output-file.
func (o *outputFlags) write(cmd *cobra.Command, info osinfo.Info) error {
	f, err := o.resolve()
	if err != nil {
		return err
	}

	if o.file == "" {
		return render.Write(cmd.OutOrStdout(), info, f)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, info, f); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(o.file, buf.Bytes(), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", o.file), "")
	}

	logger := logging.FromContext(cmd.Context())
	logger.Info("wrote os info", slog.String("path", o.file), slog.String("format", string(f)))
	return nil
}
