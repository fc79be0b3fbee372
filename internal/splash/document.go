package splash

import "sync"

// Document is the shared page state the splash takes over while it plays.
type Document interface {
	Cursor() string
	SetCursor(string)
	Overflow() string
	SetOverflow(string)
}

const (
	defaultCursor   = "auto"
	defaultOverflow = "auto"
)

// Body is a visitor's document body state, rendered into the page's
// <body> style attribute.
type Body struct {
	mu       sync.Mutex
	cursor   string
	overflow string
}

// NewBody returns a body with browser defaults.
func NewBody() *Body {
	return &Body{cursor: defaultCursor, overflow: defaultOverflow}
}

func (b *Body) Cursor() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

func (b *Body) SetCursor(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = v
}

func (b *Body) Overflow() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overflow
}

func (b *Body) SetOverflow(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overflow = v
}

// Style renders the body state as an inline CSS declaration list.
func (b *Body) Style() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return "cursor: " + b.cursor + "; overflow: " + b.overflow + ";"
}

// Takeover holds the document in the full-screen splash state and
// remembers what it replaced.
type Takeover struct {
	doc          Document
	prevCursor   string
	prevOverflow string
	release      sync.Once
}

// Acquire hides the cursor and page scrolling on doc.
func Acquire(doc Document) *Takeover {
	t := &Takeover{
		doc:          doc,
		prevCursor:   doc.Cursor(),
		prevOverflow: doc.Overflow(),
	}
	doc.SetCursor("none")
	doc.SetOverflow("hidden")
	return t
}

// Release restores the values seen at Acquire. Only the first call has an
// effect.
func (t *Takeover) Release() {
	if t == nil {
		return
	}
	t.release.Do(func() {
		t.doc.SetCursor(t.prevCursor)
		t.doc.SetOverflow(t.prevOverflow)
	})
}
