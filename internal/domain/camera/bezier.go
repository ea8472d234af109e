package camera

import "github.com/go-gl/mathgl/mgl64"

// DegenerateEpsilon is the length below which a cross product is treated as zero.
const DegenerateEpsilon = 1e-9

// bezierRunner moves the camera along a quadratic curve for position and a
// straight line for the look-at target.
type bezierRunner struct {
	startPosition mgl64.Vec3
	midPosition   mgl64.Vec3
	endPosition   mgl64.Vec3

	startTarget mgl64.Vec3
	endTarget   mgl64.Vec3

	time float64
	step float64
}

func (b *bezierRunner) init(startPos, startTarget, endPos, endTarget mgl64.Vec3, step float64) {
	b.startPosition = startPos
	b.endPosition = endPos
	b.startTarget = startTarget
	b.endTarget = endTarget
	b.midPosition = BezierMidpoint(startPos, startTarget, endPos, endTarget)
	b.time = 0
	b.step = step
}

// advance moves time forward one step and returns the pose to apply.
// done reports that time has passed 1; the returned pose is then the end pose.
func (b *bezierRunner) advance() (pos, target mgl64.Vec3, done bool) {
	b.time += b.step
	t := b.time
	if t > 1 {
		t = 1
		done = true
	}
	return b.position(t), lerp(b.startTarget, b.endTarget, t), done
}

func (b *bezierRunner) position(t float64) mgl64.Vec3 {
	u := 1 - t
	return b.startPosition.Mul(u * u).
		Add(b.midPosition.Mul(2 * u * t)).
		Add(b.endPosition.Mul(t * t))
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// BezierMidpoint returns the control point lifting the camera path up and
// to the side of the straight start→end line:
//
//	mid = (start+end)/2 + |end-start| * (up + perpendicular)
//
// perpendicular is cross(cross(targetDelta_xz, positionDelta_xz), positionDelta)
// normalized, or world up when that cross product is degenerate.
func BezierMidpoint(startPos, startTarget, endPos, endTarget mgl64.Vec3) mgl64.Vec3 {
	positionDelta := endPos.Sub(startPos)
	targetDelta := endTarget.Sub(startTarget)

	positionXZ := mgl64.Vec3{positionDelta.X(), 0, positionDelta.Z()}
	targetXZ := mgl64.Vec3{targetDelta.X(), 0, targetDelta.Z()}

	perpendicular := targetXZ.Cross(positionXZ).Cross(positionDelta)
	if perpendicular.Len() < DegenerateEpsilon {
		perpendicular = WorldUp
	} else {
		perpendicular = perpendicular.Normalize()
	}

	center := startPos.Add(endPos).Mul(0.5)
	return center.Add(WorldUp.Add(perpendicular).Mul(positionDelta.Len()))
}
