package rgb2gray

import "github.com/user/rgb2gray/pkg/video"

// SinkTemplate returns the caps the sink pad can ever accept: BGRx of any
// size and framerate.
func SinkTemplate() video.Caps {
	return video.Caps{templateStructure(video.StringValue(video.FormatBGRx.String()))}
}

// SrcTemplate returns the caps the source pad can ever produce: BGRx or GRAY8.
func SrcTemplate() video.Caps {
	return video.Caps{templateStructure(video.List{
		video.StringValue(video.FormatBGRx.String()),
		video.StringValue(video.FormatGray8.String()),
	})}
}

func templateStructure(format video.Value) video.Structure {
	return video.NewStructure(video.MediaTypeRaw,
		video.Field{Name: "format", Value: format},
		video.Field{Name: "width", Value: video.IntRange{Min: 0, Max: video.MaxDimension}},
		video.Field{Name: "height", Value: video.IntRange{Min: 0, Max: video.MaxDimension}},
		video.Field{Name: "framerate", Value: video.FractionRange{
			Min: video.Fraction{Num: 0, Den: 1},
			Max: video.Fraction{Num: video.MaxDimension, Den: 1},
		}},
	)
}

// TransformCaps returns the caps acceptable on the opposite pad of dir.
//
// For source pad caps the sink side can only take BGRx, so every structure
// is kept with its format forced to BGRx. For sink pad caps the source side
// may produce GRAY8 or pass BGRx through: GRAY8 clones of every structure
// come first, followed by the unmodified originals.
//
// A nil filter means no filter. Any other filter narrows the result with
// filter order winning, so an empty non-nil filter yields empty caps.
func (e *Element) TransformCaps(dir video.PadDirection, caps, filter video.Caps) video.Caps {
	var other video.Caps
	if dir == video.DirectionSrc {
		other = make(video.Caps, 0, len(caps))
		for _, s := range caps {
			s = s.Clone()
			s.Set("format", video.StringValue(video.FormatBGRx.String()))
			other = append(other, s)
		}
	} else {
		other = make(video.Caps, 0, 2*len(caps))
		for _, s := range caps {
			gray := s.Clone()
			gray.Set("format", video.StringValue(video.FormatGray8.String()))
			other = append(other, gray)
		}
		other = append(other, caps.Clone()...)
	}

	e.logger.Debug("Transformed caps from %s to %s in direction %s", caps, other, dir)

	if filter == nil {
		return other
	}
	return filter.IntersectFirst(other)
}
