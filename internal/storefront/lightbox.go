package storefront

// Lightbox is the hero slideshow state machine: a fixed image sequence
// collected once at setup and a current index. All navigation wraps, so the
// index stays inside [0, len-1] for any sequence of calls.
type Lightbox struct {
	images []string
	index  int
	open   bool
}

func NewLightbox(images []string) *Lightbox {
	return &Lightbox{images: images}
}

// Open shows the first image. Reopening an open lightbox is a no-op beyond
// resetting to the start.
func (l *Lightbox) Open() {
	if len(l.images) == 0 {
		return
	}
	l.open = true
	l.index = 0
}

// OpenAt shows a specific slide; out-of-range values wrap like navigation.
func (l *Lightbox) OpenAt(i int) {
	if len(l.images) == 0 {
		return
	}
	l.open = true
	l.index = wrap(i, len(l.images))
}

// Navigate moves by dir (-1 or +1) with wraparound. Closed or empty
// lightboxes ignore it.
func (l *Lightbox) Navigate(dir int) {
	if !l.open || len(l.images) == 0 {
		return
	}
	l.index = wrap(l.index+dir, len(l.images))
}

// Close hides the overlay; closing twice is harmless.
func (l *Lightbox) Close() { l.open = false }

func (l *Lightbox) IsOpen() bool { return l.open }
func (l *Lightbox) Index() int   { return l.index }

// Current returns the displayed image URL, or "" when closed or empty.
func (l *Lightbox) Current() string {
	if !l.open || len(l.images) == 0 {
		return ""
	}
	return l.images[l.index]
}

// Next and Prev return the wrapped neighbour indexes without moving; the
// server-rendered overlay uses them as navigation link targets.
func (l *Lightbox) Next() int { return wrap(l.index+1, len(l.images)) }
func (l *Lightbox) Prev() int { return wrap(l.index-1, len(l.images)) }

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
