package forecast

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sartorproj/tempcast/errs"
	"github.com/sartorproj/tempcast/stats"
	"github.com/sartorproj/tempcast/timeseries"
)

var derivativeHeader = []string{
	"Date", "Temperature", "ForwardDerivative", "BackwardDerivative", "CentralDerivative",
}

// Derivative reads a forecast CSV and writes its forward, backward and
// central day-over-day differences to output.
func (p *Pipeline) Derivative(input, output string) (*stats.Derivatives, error) {
	p.Reporter.Info("Loading forecast from " + input)
	series, err := timeseries.LoadCSV(input, p.CSV)
	if err != nil {
		return nil, err
	}
	if series.Missing() > 0 {
		return nil, errs.DataFormat("derivative", "forecast contains missing values", nil)
	}

	d := stats.DiscreteDerivatives(series)

	p.Reporter.Info("Writing derivatives to " + output)
	if err := writeDerivatives(series, d, output); err != nil {
		return nil, err
	}

	p.Reporter.Success(fmt.Sprintf("Derivatives of %d days written to %s", series.Len(), output))
	return d, nil
}

func writeDerivatives(series *timeseries.Series, d *stats.Derivatives, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errs.IO("derivative", "cannot create "+filename, err)
	}

	if err := writeDerivativesTo(file, series, d); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errs.IO("derivative", "cannot close "+filename, err)
	}
	return nil
}

func writeDerivativesTo(w io.Writer, series *timeseries.Series, d *stats.Derivatives) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(derivativeHeader); err != nil {
		return errs.IO("derivative", "cannot write header", err)
	}

	for i, v := range series.Values {
		row := []string{
			series.Timestamps[i].Format(timeseries.DateLayout),
			fmt.Sprintf("%.2f", v),
			fmt.Sprintf("%.2f", d.Forward[i]),
			fmt.Sprintf("%.2f", d.Backward[i]),
			fmt.Sprintf("%.2f", d.Central[i]),
		}
		if err := writer.Write(row); err != nil {
			return errs.IO("derivative", "cannot write row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errs.IO("derivative", "cannot flush rows", err)
	}
	return nil
}
