package scoring

// The sentiment heuristic is a fixed-vocabulary substring match over
// concatenated feedback text. It is deliberately simple and
// deterministic, not a language model.

// maxKeyTopics caps how many matched terms a summary reports.
const maxKeyTopics = 5

type termKind int

const (
	termPositive termKind = iota
	termNegative
	termTopic
)

type vocabTerm struct {
	word string
	kind termKind

	// suggestion is emitted when the term matched and the overall
	// sentiment is not positive. Empty for purely tonal terms.
	suggestion string
}

// vocabulary is ordered: earlier terms win the key-topic slots when
// more than maxKeyTopics match.
var vocabulary = []vocabTerm{
	{word: "great", kind: termPositive},
	{word: "excellent", kind: termPositive},
	{word: "amazing", kind: termPositive},
	{word: "fun", kind: termPositive},
	{word: "enjoyed", kind: termPositive},
	{word: "helpful", kind: termPositive},

	{word: "boring", kind: termNegative, suggestion: "rework the format to be more interactive"},
	{word: "disappointing", kind: termNegative, suggestion: "review expectations set in the event description"},
	{word: "poor", kind: termNegative},
	{word: "waste", kind: termNegative},

	{word: "venue", kind: termTopic, suggestion: "reconsider the venue choice"},
	{word: "crowded", kind: termTopic, suggestion: "book a larger venue or lower capacity"},
	{word: "room", kind: termTopic, suggestion: "reconsider the venue choice"},
	{word: "speaker", kind: termTopic, suggestion: "brief speakers more thoroughly"},
	{word: "content", kind: termTopic, suggestion: "revisit the session content"},
	{word: "schedule", kind: termTopic, suggestion: "review the timing of the event"},
	{word: "late", kind: termTopic, suggestion: "start on time"},
	{word: "long", kind: termTopic, suggestion: "tighten the running time"},
	{word: "food", kind: termTopic, suggestion: "improve the catering"},
	{word: "organized", kind: termTopic},
	{word: "organised", kind: termTopic},
}
