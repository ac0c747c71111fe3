// Package canvas provides the software drawing surface used by kaleido.
//
// # Overview
//
// canvas is a small immediate-mode 2D surface modelled on the HTML Canvas
// 2D context: a transform stack (Push/Pop), path construction and fill,
// rectangle fill and clear, pattern brushes with repeat modes, and raw
// pixel readback and writeback.
//
//	dc, err := canvas.NewContext(256, 256)
//	if err != nil {
//		return err
//	}
//	dc.SetFillBrush(canvas.Solid(canvas.Red))
//	dc.Translate(128, 128)
//	dc.Rotate(math.Pi / 4)
//	if err := dc.FillRect(-32, -32, 64, 64); err != nil {
//		return err
//	}
//	data, err := dc.GetImageData(0, 0, 256, 256)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles rotate clockwise on screen
//
// Path points are mapped to device space when they are added, exactly as a
// canvas does. The transform in effect at fill time only positions pattern
// brushes, which are sampled in that user space.
//
// # Pixels
//
// Pixmap and ImageData store premultiplied RGBA, 4 bytes per pixel.
// GetImageData and PutImageData ignore the transform and copy bytes
// verbatim, so a readback followed by a writeback is lossless.
package canvas
