// Package annotation provides the freehand drawing layer: strokes
// captured over a slide, kept per page in memory for the life of the
// viewer.
//
// Strokes are deliberately outside the view-state history timeline:
// drawing a stroke does not create an undo point, and undo/redo of the
// view never add or remove strokes. Whether strokes should join that
// timeline is an open requirements question inherited from the original
// behavior; until it is answered the only bulk operation is ClearPage.
package annotation
