package service

// Recorder receives domain events worth counting.
type Recorder interface {
	RecordCreated(entity string)
	RecordValidationFailure(entity string)
}

// Entity names passed to Recorder.
const (
	EntityAccount  = "account"
	EntityResident = "resident"
)

type noopRecorder struct{}

func (noopRecorder) RecordCreated(string)           {}
func (noopRecorder) RecordValidationFailure(string) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
