package main

import (
	"github.com/oomph-ac/cubesim/input"
)

// pilot drives the input buffer the way a player at the keyboard would.
type pilot struct {
	in *input.Buffer
}

// step feeds the input for frame n. The pattern repeats every 240 frames.
func (p *pilot) step(n int) {
	switch phase := n % 240; {
	case phase == 1:
		p.in.Click(input.PrimaryButton)
		p.in.KeyDown(input.KeyForward)
	case phase == 60:
		p.in.KeyDown(input.KeyJump)
	case phase == 61:
		p.in.KeyUp(input.KeyJump)
	case phase > 90 && phase < 120:
		p.in.MouseMove(6, 2)
	case phase == 120:
		p.in.KeyUp(input.KeyForward)
		p.in.KeyDown(input.KeyLeft)
		p.in.Click(input.PrimaryButton)
	case phase == 180:
		p.in.KeyUp(input.KeyLeft)
		p.in.KeyDown(input.KeyReset)
	case phase == 181:
		p.in.KeyUp(input.KeyReset)
	}
}
