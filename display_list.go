package dlist

import "github.com/gogpu/dlist/internal/list"

// DisplayList holds the items of one stacking context, partitioned into the
// paint-order buckets of CSS 2.1 Appendix E, plus the child stacking
// contexts.
//
// Buckets are linked lists so that AppendFrom and
// FormFloatPseudoStackingContext splice in constant time. A DisplayList is
// built on a single goroutine and must not be modified once its stacking
// context has been published for painting.
type DisplayList struct {
	// BackgroundsAndBorders holds the root element's backgrounds and borders.
	BackgroundsAndBorders *list.List[DisplayItem]
	// BlockBackgroundsAndBorders holds backgrounds and borders of block
	// descendants.
	BlockBackgroundsAndBorders *list.List[DisplayItem]
	// Floats holds floated descendants.
	Floats *list.List[DisplayItem]
	// Content holds in-flow inline content: text, images and replaced
	// elements.
	Content *list.List[DisplayItem]
	// Outlines holds outlines, painted last.
	Outlines *list.List[DisplayItem]
	// Children holds the child stacking contexts in document order.
	Children *list.List[*StackingContext]
}

// NewDisplayList returns an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{
		BackgroundsAndBorders:      list.New[DisplayItem](),
		BlockBackgroundsAndBorders: list.New[DisplayItem](),
		Floats:                     list.New[DisplayItem](),
		Content:                    list.New[DisplayItem](),
		Outlines:                   list.New[DisplayItem](),
		Children:                   list.New[*StackingContext](),
	}
}

// PushBackgroundOrBorder appends to BackgroundsAndBorders.
func (d *DisplayList) PushBackgroundOrBorder(item DisplayItem) {
	d.BackgroundsAndBorders.PushBack(item)
}

// PushBlockBackgroundOrBorder appends to BlockBackgroundsAndBorders.
func (d *DisplayList) PushBlockBackgroundOrBorder(item DisplayItem) {
	d.BlockBackgroundsAndBorders.PushBack(item)
}

// PushFloat appends to Floats.
func (d *DisplayList) PushFloat(item DisplayItem) {
	d.Floats.PushBack(item)
}

// PushContent appends to Content.
func (d *DisplayList) PushContent(item DisplayItem) {
	d.Content.PushBack(item)
}

// PushOutline appends to Outlines.
func (d *DisplayList) PushOutline(item DisplayItem) {
	d.Outlines.PushBack(item)
}

// PushChild appends a child stacking context.
func (d *DisplayList) PushChild(child *StackingContext) {
	d.Children.PushBack(child)
}

// buckets returns the item buckets in paint order.
func (d *DisplayList) buckets() [5]*list.List[DisplayItem] {
	return [5]*list.List[DisplayItem]{
		d.BackgroundsAndBorders,
		d.BlockBackgroundsAndBorders,
		d.Floats,
		d.Content,
		d.Outlines,
	}
}

// Len returns the number of display items, not counting children.
func (d *DisplayList) Len() int {
	n := 0
	for _, b := range d.buckets() {
		n += b.Len()
	}
	return n
}

// IsEmpty reports whether the list has neither items nor children.
func (d *DisplayList) IsEmpty() bool {
	return d.Len() == 0 && d.Children.Len() == 0
}

// AppendFrom moves every item and child of other to the end of the
// corresponding bucket of d, leaving other empty. It runs in constant time.
func (d *DisplayList) AppendFrom(other *DisplayList) {
	d.BackgroundsAndBorders.AppendList(other.BackgroundsAndBorders)
	d.BlockBackgroundsAndBorders.AppendList(other.BlockBackgroundsAndBorders)
	d.Floats.AppendList(other.Floats)
	d.Content.AppendList(other.Content)
	d.Outlines.AppendList(other.Outlines)
	d.Children.AppendList(other.Children)
}

// FormFloatPseudoStackingContext merges every bucket into Floats so that a
// float paints atomically: Floats becomes backgrounds, block backgrounds,
// content, outlines and then the previous floats, in that order.
func (d *DisplayList) FormFloatPseudoStackingContext() {
	d.Floats.PrependList(d.Outlines)
	d.Floats.PrependList(d.Content)
	d.Floats.PrependList(d.BlockBackgroundsAndBorders)
	d.Floats.PrependList(d.BackgroundsAndBorders)
}

// AllDisplayItems copies the items of every bucket, in paint order, into one
// slice. Children are not included. It is inefficient and meant for debugging
// and tests only.
func (d *DisplayList) AllDisplayItems() []DisplayItem {
	out := make([]DisplayItem, 0, d.Len())
	for _, b := range d.buckets() {
		out = append(out, b.Slice()...)
	}
	return out
}
