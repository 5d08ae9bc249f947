package replay

import "github.com/younwookim/ghostoverlay/internal/domain/input"

// FrameInput is the JSON form of a single decoded frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	Acc bool `json:"acc,omitempty"` // Accelerate
	Dr  bool `json:"dr,omitempty"`  // Drift
	It  bool `json:"it,omitempty"`  // Item
	A   bool `json:"a,omitempty"`
	B   bool `json:"b,omitempty"`
	X   bool `json:"x,omitempty"`
	Y   bool `json:"y,omitempty"`
	L   bool `json:"l,omitempty"`
	R   bool `json:"r,omitempty"`
	FP  bool `json:"fp,omitempty"` // FirstPerson
	H   int  `json:"h"`            // Horizontal
	V   int  `json:"v"`            // Vertical
	T   int  `json:"t,omitempty"`  // Trick
}

// TimelineData is the JSON form of a decoded timeline
type TimelineData struct {
	Version   string       `json:"version"`
	Format    string       `json:"format"`
	FrameRate float64      `json:"frameRate"`
	Frames    []FrameInput `json:"frames"`
}

func toFrameInput(i int, r input.FrameRecord) FrameInput {
	return FrameInput{
		F:   i,
		Acc: r.Accelerate,
		Dr:  r.Drift,
		It:  r.Item,
		A:   r.A,
		B:   r.B,
		X:   r.X,
		Y:   r.Y,
		L:   r.L,
		R:   r.R,
		FP:  r.FirstPerson,
		H:   r.Horizontal,
		V:   r.Vertical,
		T:   int(r.Trick),
	}
}

func (fi FrameInput) record() input.FrameRecord {
	return input.FrameRecord{
		Accelerate:  fi.Acc,
		Drift:       fi.Dr,
		Item:        fi.It,
		A:           fi.A,
		B:           fi.B,
		X:           fi.X,
		Y:           fi.Y,
		L:           fi.L,
		R:           fi.R,
		FirstPerson: fi.FP,
		Horizontal:  fi.H,
		Vertical:    fi.V,
		Trick:       input.Trick(fi.T),
	}
}
