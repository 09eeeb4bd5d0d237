// Package mode composes namespaced shapes into sprite artifacts.
//
// A sprite mode is a tagged variant: every mode has its own options type
// implementing [Config], and [Render] dispatches on that type.
//
//	css     position-addressed sprite plus a background-position stylesheet
//	view    position-addressed sprite with a <view> per shape
//	defs    one <svg> per shape inside <defs>
//	symbol  one <symbol> per shape
//	stack   shapes share one region, :target selects the visible one
//
// # Artifacts
//
// Rendering never touches the filesystem for output. It returns
// [Artifact] values carrying a relative path, the content and a BLAKE3
// digest; writing them is the caller's job.
//
// # Failures
//
// A shape that cannot be rendered is reported as a [errors.ShapeError]
// in [Output.Failures] and left out of the sprite. A merged document that
// does not parse is a [errors.ModeError] with code COMPOSE and no
// artifacts are produced for that mode.
package mode
