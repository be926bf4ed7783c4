/*
Copyright © 2026 the LUMA authors.
This file is part of LUMA.

LUMA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

LUMA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with LUMA.  If not, see <http://www.gnu.org/licenses/>.
*/

package lumautil

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"
	"text/tabwriter"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/cropmodel/luma"
	"github.com/lnashier/viper"
)

// TreatmentResult pairs a treatment with its simulated outcome.
type TreatmentResult struct {
	Treatment Treatment
	Result    *luma.Result
	Err       error
}

// RunTreatments simulates the given treatments in parallel, one
// worker per CPU (or workers, if positive). Every run gets its own
// Simulator with its own parameter copy. Results are returned in
// input order.
func RunTreatments(cfg *viper.Viper, trs []Treatment, workers int) ([]TreatmentResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(trs) {
		workers = len(trs)
	}

	results := make([]TreatmentResult, len(trs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tr := trs[i]
				results[i] = TreatmentResult{Treatment: tr}
				sim, err := BuildSimulator(cfg, tr.Regime)
				if err != nil {
					results[i].Err = err
					continue
				}
				sim.LogWriter = nil // per-day logs interleave badly across workers
				results[i].Result, results[i].Err = sim.Run()
			}
		}()
	}
	for i := range trs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			return results, fmt.Errorf("lumautil: treatment %s: %w", r.Treatment.Name, r.Err)
		}
	}
	return results, nil
}

// WriteReport prints a validation table comparing simulated and
// observed harvest values, followed by mean absolute percent errors.
func WriteReport(w io.Writer, results []TreatmentResult) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Treatment\tFW (g)\tobs\terr%\tAnth (ppm)\tobs\terr%\tStress")

	var fwErr, anthErr stats.Stats
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\tfailed: %v\n", r.Treatment.Name, r.Err)
			continue
		}
		o := r.Result.Output
		fe := percentError(o.FreshWeight, r.Treatment.TargetFW)
		ae := percentError(o.AnthocyaninPPM, r.Treatment.TargetAnth)
		if !math.IsNaN(fe) {
			fwErr.Update(math.Abs(fe))
		}
		if !math.IsNaN(ae) {
			anthErr.Update(math.Abs(ae))
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%+.1f\t%.0f\t%.0f\t%+.1f\t%.1f\n",
			r.Treatment.Name, o.FreshWeight, r.Treatment.TargetFW, fe,
			o.AnthocyaninPPM, r.Treatment.TargetAnth, ae, r.Result.MeanStress)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if fwErr.Count() > 0 {
		fmt.Fprintf(w, "\nmean absolute error: FW %.1f%%, Anth %.1f%% over %d treatments\n",
			fwErr.Mean(), anthErr.Mean(), fwErr.Count())
	}
	return nil
}

// percentError returns the signed percent deviation of sim from obs,
// or NaN when there is no observation.
func percentError(sim, obs float64) float64 {
	if obs <= 0 {
		return math.NaN()
	}
	return (sim - obs) / obs * 100
}
