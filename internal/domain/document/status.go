package document

import "fmt"

// Status tracks a document through the processing lifecycle:
//
//	Uploaded -> Extracting -> {Extracted | ExtractionFailed}
//	Extracted -> SkillsParsed
//
// ExtractionFailed and SkillsParsed are terminal. There are no automatic
// retries; a failed extraction is reported to the caller, who may resubmit.
type Status string

const (
	StatusUploaded         Status = "uploaded"
	StatusExtracting       Status = "extracting"
	StatusExtracted        Status = "extracted"
	StatusExtractionFailed Status = "extraction_failed"
	StatusSkillsParsed     Status = "skills_parsed"
)

var transitions = map[Status][]Status{
	StatusUploaded:   {StatusExtracting},
	StatusExtracting: {StatusExtracted, StatusExtractionFailed},
	StatusExtracted:  {StatusSkillsParsed},
}

func (s Status) CanTransition(next Status) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusExtractionFailed || s == StatusSkillsParsed
}

// Transition validates and applies a state change.
func Transition(current, next Status) (Status, error) {
	if !current.CanTransition(next) {
		return current, fmt.Errorf("invalid document transition %s -> %s", current, next)
	}
	return next, nil
}
