package output

import (
	"fmt"
	"io"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// NewAppLogger builds the structured logger used by the pipeline and the API
// server. format is "text" or "json".
func NewAppLogger(w io.Writer, level, format string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := []log.Option{log.LevelOption(lvl), log.TimeFormatOption(time.RFC3339)}
	switch format {
	case "", "text":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return log.NewLogger(w, opts...), nil
}
