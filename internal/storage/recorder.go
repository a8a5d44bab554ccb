package storage

import "errors"

// Recorder files finished runs into the run history and the high-score
// file. Either may be nil.
type Recorder struct {
	Store      *Store
	HighScores *HighScoreFile
}

// Record saves run and reports whether it set a new best.
// Runs that scored nothing are not recorded.
func (r Recorder) Record(run Run) (newBest bool, err error) {
	if run.Score <= 0 {
		return false, nil
	}

	var errs []error
	if r.Store != nil {
		if _, err := r.Store.SaveRun(run); err != nil {
			errs = append(errs, err)
		}
	}
	if r.HighScores != nil {
		saved, err := r.HighScores.Submit(run.GameID, run.Score)
		if err != nil {
			errs = append(errs, err)
		}
		newBest = saved
	}
	return newBest, errors.Join(errs...)
}
