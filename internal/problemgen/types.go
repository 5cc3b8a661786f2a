package problemgen

// Problem is a generated exercise ready for display.
type Problem struct {
	// Seq is the 1-based position of the problem within its batch.
	// The exam composer renumbers it after shuffling.
	Seq int

	// Question is the prompt shown to the learner. German text, may
	// span multiple lines.
	Question string

	// Answer is the single correct numeric answer, already rounded to
	// the precision the question asked for.
	Answer float64

	// Decimals is the precision Answer was rounded to. Display code
	// uses it to decide whether a whole-valued answer shows ",0".
	Decimals int

	// Solution is the step-numbered derivation shown after a wrong
	// answer. It recomputes the values displayed in Question and ends
	// in the same rounded result as Answer.
	Solution string

	// Sketch optionally describes an illustrative diagram for
	// geometry and statistics problems. Nil for all other topics.
	// Consumed only by rendering, never reinterpreted by the engine.
	Sketch *Sketch
}

// SketchKind identifies the shape a Sketch describes.
type SketchKind string

const (
	SketchRectangle     SketchKind = "rectangle"
	SketchCircle        SketchKind = "circle"
	SketchTriangle      SketchKind = "triangle"
	SketchRightTriangle SketchKind = "right-triangle"
	SketchTrapezoid     SketchKind = "trapezoid"
	SketchCube          SketchKind = "cube"
	SketchSphere        SketchKind = "sphere"
	SketchCuboid        SketchKind = "cuboid"
	SketchCylinder      SketchKind = "cylinder"
	SketchCone          SketchKind = "cone"
	SketchBarChart      SketchKind = "bar-chart"
)

// Sketch is a structured diagram description. Only the fields relevant
// to Kind are set; zero values mean "not part of this shape". For the
// right triangle, the side being solved for is left 0.
type Sketch struct {
	Kind SketchKind

	Length float64 // rectangle, cuboid
	Width  float64 // rectangle, cuboid
	Height float64 // triangle, trapezoid, cuboid, cylinder, cone
	Radius float64 // circle, sphere, cylinder, cone
	Base   float64 // triangle
	Side   float64 // cube
	A      float64 // trapezoid long side; right triangle cathetus a
	B      float64 // right triangle cathetus b
	C      float64 // trapezoid short side; right triangle hypotenuse

	Values []int // bar chart
}
