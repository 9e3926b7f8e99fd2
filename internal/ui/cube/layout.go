package cube

import "fyne.io/fyne/v2"

// faceLayout stacks title, time, progress, counter and controls, keeping the
// time centered in the space left over.
type faceLayout struct{}

func (layout *faceLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	title := objects[0]
	timer := objects[1]
	progress := objects[2]
	counter := objects[3]
	controls := objects[4]

	pad := size.Height * 0.05
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	titleSize := title.MinSize()
	title.Move(fyne.NewPos(pad, pad))
	title.Resize(fyne.NewSize(availableWidth, titleSize.Height))

	controlsSize := controls.MinSize()
	controlsY := size.Height - pad - controlsSize.Height
	controls.Move(fyne.NewPos(pad, controlsY))
	controls.Resize(fyne.NewSize(availableWidth, controlsSize.Height))

	counterSize := counter.MinSize()
	counterY := controlsY - counterSize.Height - 4
	counter.Move(fyne.NewPos(pad, counterY))
	counter.Resize(fyne.NewSize(availableWidth, counterSize.Height))

	progressSize := progress.MinSize()
	progressY := counterY - progressSize.Height - 6
	progress.Move(fyne.NewPos(pad, progressY))
	progress.Resize(fyne.NewSize(availableWidth, progressSize.Height))

	timerSize := timer.MinSize()
	top := pad + titleSize.Height
	timerY := top + (progressY-top-timerSize.Height)/2
	if timerY < top {
		timerY = top
	}
	timer.Move(fyne.NewPos(pad, timerY))
	timer.Resize(fyne.NewSize(availableWidth, timerSize.Height))
}

func (layout *faceLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 5 {
		return fyne.NewSize(0, 0)
	}
	var width, height float32
	for _, object := range objects[:5] {
		size := object.MinSize()
		if size.Width > width {
			width = size.Width
		}
		height += size.Height
	}
	return fyne.NewSize(width+20, height+40)
}
