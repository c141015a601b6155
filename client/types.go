package client

// ------------------------------
// Core domain types and payloads
// ------------------------------

// Intent is the decoded JSON object the server returns for a recognized
// intent. The schema is owned by the server; the SDK passes it through
// unmodified.
type Intent = map[string]any

// TranscriptionResult reports whether a transcription succeeded.
type TranscriptionResult string

const (
	TranscriptionSuccess TranscriptionResult = "success"
	TranscriptionFailure TranscriptionResult = "failure"
)

// Transcription is the output of speech to text.
type Transcription struct {
	Result TranscriptionResult `json:"result"`
	Text   string              `json:"text,omitempty"`
}

// TrainingResult reports whether profile training succeeded.
type TrainingResult string

const (
	TrainingSuccess TrainingResult = "success"
	TrainingFailure TrainingResult = "failure"
)

// TrainingReport is returned by Train. Errors carries the server's error
// text when training failed.
type TrainingReport struct {
	Result TrainingResult `json:"result"`
	Errors string         `json:"errors,omitempty"`
}

// Sentences groups template sentences by intent name, mirroring the
// sections of the server's sentences.ini.
type Sentences = map[string][]string

// CustomWords groups pronunciations by word.
type CustomWords = map[string][]string

// Slots maps slot names to their values.
type Slots = map[string][]string

// Pronunciations is the result of a dictionary lookup for one word.
type Pronunciations struct {
	InDictionary   bool     `json:"in_dictionary"`
	Pronunciations []string `json:"pronunciations"`
}

// SpeakAck is returned by Say; it only acknowledges that the utterance was
// accepted into the per-site queue.
type SpeakAck struct {
	SiteID string `json:"siteId"`
	Status string `json:"status"`
}
