package simplemessage

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// appendFallbackLog writes one record for a failed send. The text goes last
// and verbatim so the file can be searched for the exact message.
func appendFallbackLog(filename string, now time.Time, resp Response, text string) (err error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", filename)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", filename)
		}
	}()

	if _, werr := f.WriteString(formatFallbackRecord(now, resp, text)); werr != nil {
		return errors.Wrapf(werr, "write %s", filename)
	}

	return nil
}

func formatFallbackRecord(now time.Time, resp Response, text string) string {
	return fmt.Sprintf("%s request_id=%s channel=%q error=%q detail=%q text=%s\n",
		now.UTC().Format(time.RFC3339),
		resp.RequestID,
		resp.Destination,
		resp.Error,
		resp.details(),
		text,
	)
}
