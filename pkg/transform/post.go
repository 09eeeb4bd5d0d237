package transform

import "context"

// PostFunc post-processes a composed sprite document.
type PostFunc func(ctx context.Context, sprite []byte) ([]byte, error)

// BuildPost normalizes the configured post-processing list. A single
// function, a list of functions, or a mixed list (non-functions are
// dropped) are accepted; anything else yields an empty chain.
func BuildPost(raw any) []PostFunc {
	switch v := raw.(type) {
	case PostFunc:
		return []PostFunc{v}
	case func(context.Context, []byte) ([]byte, error):
		return []PostFunc{v}
	case []PostFunc:
		out := make([]PostFunc, 0, len(v))
		for _, f := range v {
			if f != nil {
				out = append(out, f)
			}
		}
		return out
	case []any:
		out := make([]PostFunc, 0, len(v))
		for _, e := range v {
			switch f := e.(type) {
			case PostFunc:
				out = append(out, f)
			case func(context.Context, []byte) ([]byte, error):
				out = append(out, f)
			}
		}
		return out
	}
	return []PostFunc{}
}

// RunPost applies the chain in order.
func RunPost(ctx context.Context, chain []PostFunc, sprite []byte) ([]byte, error) {
	for _, f := range chain {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := f(ctx, sprite)
		if err != nil {
			return nil, err
		}
		sprite = out
	}
	return sprite, nil
}
