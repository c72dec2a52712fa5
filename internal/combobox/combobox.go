package combobox

// request is an open or close call that arrived while another transition
// was being processed. It is replayed once the control settles.
type request struct {
	open   bool
	commit bool
}

// ComboBox owns the selection and the overlay state machine of one combo
// box. It is not safe for concurrent use; every method is meant to run on
// the goroutine that owns the UI.
type ComboBox struct {
	name string
	cfg  Config

	sel   Selection
	state State
	geom  Geometry
	bus   Bus
	host  bridge

	anchor           Rect
	screenW, screenH int

	// Per-open session.
	rowHeight int
	highlight int
	offset    int
	pool      []RowView

	// busy is non-zero while a transition or a notification is in flight.
	busy  int
	queue []request

	commits       uint64
	lastCommitted int
}

// New returns a closed combo box with no selection.
func New(name string, cfg Config) *ComboBox {
	return &ComboBox{
		name:          name,
		cfg:           cfg.Normalize(),
		sel:           NewSelection(),
		highlight:     NoSelection,
		rowHeight:     DefaultRowHeight,
		lastCommitted: NoSelection,
	}
}

// Name returns the name given to New.
func (c *ComboBox) Name() string { return c.name }

// Config returns the current settings.
func (c *ComboBox) Config() Config { return c.cfg }

// SetConfig replaces the settings. While open, the overlay is re-laid out
// with the usual frame-change notifications.
func (c *ComboBox) SetConfig(cfg Config) {
	c.cfg = cfg.Normalize()
	if c.state == Open {
		c.NotifyFrameChange(c.anchor)
	}
}

// SetDataSource sets the row provider. The combo box does not own it; nil
// detaches it.
func (c *ComboBox) SetDataSource(p RowProvider) { c.host.provider = p }

// SetDelegate sets the host delegate. The combo box does not own it; nil
// detaches it.
func (c *ComboBox) SetDelegate(d HostDelegate) { c.host.delegate = d }

// DetachDataSource drops the row provider.
func (c *ComboBox) DetachDataSource() { c.host.provider = nil }

// DetachDelegate drops the host delegate.
func (c *ComboBox) DetachDelegate() { c.host.delegate = nil }

// Subscribe registers an observer for lifecycle notifications.
func (c *ComboBox) Subscribe(o Observer) Subscription { return c.bus.Subscribe(o) }

// Unsubscribe removes an observer.
func (c *ComboBox) Unsubscribe(id Subscription) { c.bus.Unsubscribe(id) }

// State returns the overlay state.
func (c *ComboBox) State() State { return c.state }

// IsOpened reports whether the overlay surface exists.
func (c *ComboBox) IsOpened() bool { return c.state != Closed }

// Geometry returns the last computed overlay geometry.
func (c *ComboBox) Geometry() Geometry { return c.geom }

// Anchor returns the field's frame as last reported by the host.
func (c *ComboBox) Anchor() Rect { return c.anchor }

// RowHeight returns the row height used by the current or last session.
func (c *ComboBox) RowHeight() int { return c.rowHeight }

// Offset returns the index of the first visible row.
func (c *ComboBox) Offset() int { return c.offset }

// SelectedIndex returns the committed row, or NoSelection.
func (c *ComboBox) SelectedIndex() int { return c.sel.Index() }

// SetSelectedIndex assigns the selection from host code. The index is
// checked against the provider's current row count; ErrOutOfRange is
// returned and the previous value kept when it does not fit. The delegate
// is not notified.
func (c *ComboBox) SetSelectedIndex(i int) error {
	if n := c.host.rowCount(c); n >= 0 {
		c.sel.Refresh(n)
	}
	if err := c.sel.Set(i); err != nil {
		logger.Debug("selection rejected", "combobox", c.name, "index", i, "err", err)
		return err
	}
	return nil
}

// SelectedTitle returns the delegate's title for the selected row, or "".
func (c *ComboBox) SelectedTitle() string {
	i := c.sel.Index()
	if i == NoSelection {
		return ""
	}
	return c.host.title(c, i)
}

// Commits returns how many commits have succeeded so far.
func (c *ComboBox) Commits() uint64 { return c.commits }

// LastCommitted returns the row of the most recent successful commit.
func (c *ComboBox) LastCommitted() int { return c.lastCommitted }

// SetAnchor records the field's frame. While open this is a frame change;
// otherwise the anchor is kept for the next open.
func (c *ComboBox) SetAnchor(r Rect) {
	if c.state == Open {
		c.NotifyFrameChange(r)
		return
	}
	c.anchor = r
}

// SetScreen records the host's screen bounds used to place the overlay.
func (c *ComboBox) SetScreen(width, height int) {
	c.screenW, c.screenH = width, height
	if c.state == Open {
		c.NotifyFrameChange(c.anchor)
	}
}

// RequestOpen opens the overlay. It is a no-op while opening or open and
// when the provider is missing or has no rows.
//
// While a transition runs, or while earlier requests are still queued, the
// request is queued behind them and replayed in arrival order. An open that
// arrives during Opening with a close already queued therefore runs after
// that close, as a second open.
func (c *ComboBox) RequestOpen() {
	if c.busy > 0 || c.state == Closing || len(c.queue) > 0 {
		c.enqueue(request{open: true})
		return
	}
	c.open()
}

func (c *ComboBox) open() {
	if c.state != Closed {
		return
	}

	n := c.host.rowCount(c)
	if n <= 0 {
		logger.Debug("open suppressed", "combobox", c.name, "rows", n)
		return
	}

	c.busy++
	c.state = Opening
	c.sel.Refresh(n)
	c.rowHeight = c.host.rowHeight(c)
	c.geom = c.layout(n)
	// WillShow carries the frame the overlay is about to occupy.
	c.emit(WillShow)

	c.highlight = c.sel.Index()
	if c.highlight == NoSelection {
		c.highlight = 0
	}
	c.offset = 0
	c.pool = make([]RowView, c.geom.VisibleRows)
	c.scrollToHighlight(n)
	c.busy--

	if !c.cfg.Animated() {
		c.CompleteTransition()
		return
	}
	c.drain()
}

// RequestClose closes the overlay. With commit the highlighted row becomes
// the selection and the delegate is told; without it the highlight is
// dropped. A close while opening runs once the open has completed.
func (c *ComboBox) RequestClose(commit bool) {
	if c.busy > 0 || c.state == Opening || len(c.queue) > 0 {
		c.enqueue(request{commit: commit})
		return
	}
	c.close(commit)
}

func (c *ComboBox) close(commit bool) {
	if c.state != Open {
		return
	}

	c.busy++
	c.state = Closing
	c.emit(WillHide)
	if commit {
		c.commit()
	}
	c.busy--

	if !c.cfg.Animated() {
		c.CompleteTransition()
		return
	}
	c.drain()
}

// CompleteTransition finishes an in-flight show or hide. The widget calls
// it when the animation ends; it is a no-op in a settled state.
func (c *ComboBox) CompleteTransition() {
	switch c.state {
	case Opening:
		c.busy++
		c.state = Open
		c.emit(DidShow)
		c.busy--
		if c.anchor != c.geom.Anchor {
			c.NotifyFrameChange(c.anchor)
		}
	case Closing:
		c.busy++
		c.teardown()
		c.state = Closed
		c.emit(DidHide)
		c.busy--
	default:
		return
	}
	c.drain()
}

// NotifyFrameChange re-lays out the overlay against a new field frame.
// It does nothing unless the overlay is open.
func (c *ComboBox) NotifyFrameChange(anchor Rect) {
	if c.state != Open {
		return
	}
	c.busy++
	c.emit(WillChangeFrame)
	c.anchor = anchor
	n := c.liveRowCount()
	c.geom = c.layout(n)
	if len(c.pool) != c.geom.VisibleRows {
		pool := make([]RowView, c.geom.VisibleRows)
		copy(pool, c.pool)
		c.pool = pool
	}
	c.scrollToHighlight(n)
	c.emit(DidChangeFrame)
	c.busy--
	c.drain()
}

func (c *ComboBox) commit() {
	if n := c.host.rowCount(c); n >= 0 {
		c.sel.Refresh(n)
	}
	row := c.highlight
	if row == NoSelection {
		return
	}
	if err := c.sel.Set(row); err != nil {
		logger.Debug("commit rejected", "combobox", c.name, "row", row, "err", err)
		return
	}
	c.commits++
	c.lastCommitted = row
	c.host.didSelect(c, row)
}

func (c *ComboBox) teardown() {
	c.highlight = NoSelection
	c.offset = 0
	c.pool = nil
}

func (c *ComboBox) layout(rows int) Geometry {
	return computeGeometry(layout{
		anchor:    c.anchor,
		screenW:   c.screenW,
		screenH:   c.screenH,
		rowCount:  rows,
		rowHeight: c.rowHeight,
		maxHeight: c.cfg.MaxPickerHeight,
		toolbar:   c.cfg.ValidateButton,
	})
}

func (c *ComboBox) emit(kind EventKind) {
	c.bus.Publish(Event{Kind: kind, Source: c, Frame: c.geom.Frame})
}

// enqueue queues a request and replays the queue if the control is already
// settled.
func (c *ComboBox) enqueue(r request) {
	c.queue = append(c.queue, r)
	logger.Debug("request deferred", "combobox", c.name, "open", r.open, "state", c.state.String())
	c.drain()
}

// drain replays queued requests in order while nothing is in flight.
func (c *ComboBox) drain() {
	for c.busy == 0 && len(c.queue) > 0 && (c.state == Closed || c.state == Open) {
		r := c.queue[0]
		c.queue = c.queue[1:]
		if r.open {
			c.open()
		} else {
			c.close(r.commit)
		}
	}
}

// Pending returns the number of queued open/close requests.
func (c *ComboBox) Pending() int { return len(c.queue) }
