package export

import (
	"os/exec"

	"github.com/pkg/errors"
)

// ErrExportFailed covers both a missing exporter binary and a non-zero
// exit. Callers treat it as a soft failure and move to the next file.
var ErrExportFailed = errors.New("export failed")

// ToXML runs the exporter in dir with its fixed four-argument contract:
//
//	Exporter.exe -input <input> -output <output> -ToXML
//
// input and output are file names relative to dir, matching how the
// exporter resolves them.
func ToXML(exporter, dir, input, output string) error {
	cmd := exec.Command(exporter, "-input", input, "-output", output, "-ToXML")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(ErrExportFailed, "%s %s: %v: %s", exporter, input, err, out)
	}
	return nil
}
