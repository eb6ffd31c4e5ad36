package syllabus

// Field names a text-bearing element of the modal.
type Field string

const (
	FieldTitle         Field = "title"
	FieldDescription   Field = "description"
	FieldTotalDuration Field = "total_duration"
)

// MaterialRow is one line in a topic body. Number runs across the whole course.
type MaterialRow struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// TopicSection is the render instruction for one accordion item.
type TopicSection struct {
	Index     int           `json:"index"`
	Title     string        `json:"title"`
	Duration  string        `json:"duration"`
	Expanded  bool          `json:"expanded"`
	Materials []MaterialRow `json:"materials"`
}

// Surface is whatever the presenter renders into: a DOM bridge, an HTML
// fragment builder, or a test recorder.
type Surface interface {
	SetText(field Field, text string)
	// ShowContainer puts the modal into the layout. It is not yet opaque.
	ShowContainer()
	// HideContainer removes the modal from the layout.
	HideContainer()
	SetOpaque(on bool)
	RenderTopicList(sections []TopicSection)
	// OnBackdropDismiss registers fn to run when the backdrop outside the
	// content panel is clicked. The returned func unregisters it.
	OnBackdropDismiss(fn func()) (remove func())
}
