// Package panmodal implements a gesture-driven bottom-sheet presentation for
// Ebitengine: a panel that slides up from the bottom of the window, rests at a
// short form or a long form height, follows drags between those heights or
// down to dismissal, and hands scroll momentum back and forth with an embedded
// scroll view.
//
// A host builds a PresentationController per presentation, calls Update once
// per tick and Draw after its own content, and configures behavior through the
// Presentable interface (embed SheetDefaults and override what you need).
package panmodal
