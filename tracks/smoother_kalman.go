package tracks

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// KalmanSmoother runs constant-velocity Kalman filter forward over a tracklet.
// The four geometry channels are fed as the filter's (cx, cy, w, h) measurement regardless of format,
// so every channel keeps its own position/velocity state.
type KalmanSmoother struct {
	// Time step between frames
	Dt float64
	// Standard deviation of acceleration (process noise)
	StdDevA float64
	// Standard deviation of measurement, same for every channel
	StdDevM float64
}

// NewKalmanSmoother creates smoother with dt=1, stdDevA=2 and stdDevM=5
func NewKalmanSmoother() *KalmanSmoother {
	return &KalmanSmoother{
		Dt:      1.0,
		StdDevA: 2.0,
		StdDevM: 5.0,
	}
}

// SmoothTracklet replaces every row (except the first one, which seeds the state) with filtered state
func (smoother *KalmanSmoother) SmoothTracklet(rows *mat.Dense) error {
	n, _ := rows.Dims()
	if n < 2 {
		return nil
	}
	first := rows.RawRowView(0)
	// No control input: drift must come from measurements only
	kf := kalman_filter.NewKalmanBBox(
		smoother.Dt, 0.0, 0.0, 0.0, 0.0,
		smoother.StdDevA, smoother.StdDevM, smoother.StdDevM, smoother.StdDevM, smoother.StdDevM,
		kalman_filter.WithStateBBox(first[0], first[1], first[2], first[3]),
	)
	for i := 1; i < n; i++ {
		measurement := rows.RawRowView(i)
		kf.Predict()
		err := kf.Update(measurement[0], measurement[1], measurement[2], measurement[3])
		if err != nil {
			return errors.Wrapf(err, "Can't update Kalman filter at row %d", i)
		}
		c0, c1, c2, c3 := kf.GetState()
		rows.SetRow(i, []float64{c0, c1, c2, c3})
	}
	return nil
}
