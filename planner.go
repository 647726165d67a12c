package fftplan

// Element is the type constraint for transform storage elements. The
// engine computes in double precision; the closed set of element-type
// pairings (complex-to-complex, real-to-complex, complex-to-real,
// real-to-real) falls out of which staged constructors exist for these two
// types.
type Element interface {
	~float64 | ~complex128
}

// storage is a bound buffer together with its element stride: a stride of
// k means every k-th slice element belongs to the transform's view.
type storage[T Element] struct {
	data   []T
	stride int
}

// logicalLen returns the number of addressable elements in the view.
func (s storage[T]) logicalLen() int {
	if s.stride <= 1 {
		return len(s.data)
	}

	return (len(s.data) + s.stride - 1) / s.stride
}

// Planner is the initial builder stage: nothing is bound yet. Rigor,
// direction and wisdom restriction may be set here (or at any later
// stage); binding an input moves to an input stage. Stage transitions copy
// the accumulated specification, so one Planner can seed many plans.
type Planner struct {
	meta meta
}

// NewPlanner returns a builder with default settings: a forward transform
// at Estimate rigor, no wisdom restriction.
func NewPlanner() *Planner {
	return &Planner{meta: newMeta()}
}

// Rigor sets the planning effort to use for this plan.
func (p *Planner) Rigor(r Rigor) *Planner {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction (complex-to-complex only; other
// pairings carry a fixed direction).
func (p *Planner) Direction(d Direction) *Planner {
	p.meta.direction = d
	return p
}

// WisdomRestriction makes planning fail, rather than fall back to ad-hoc
// planning, unless wisdom of at least the requested rigor already exists
// for the problem shape.
func (p *Planner) WisdomRestriction(restrict bool) *Planner {
	p.meta.wisdomRestriction = restrict
	return p
}

// InputComplex binds a complex input buffer.
func (p *Planner) InputComplex(data []complex128) *ComplexInput {
	return p.InputComplexStrided(data, 1)
}

// InputComplexStrided binds every stride-th element of data as the complex
// input view. Panics if stride is not positive.
func (p *Planner) InputComplexStrided(data []complex128, stride int) *ComplexInput {
	m := p.meta
	m.inStride = checkStride("InputComplexStrided", stride)

	return &ComplexInput{meta: m, in: storage[complex128]{data: data, stride: stride}}
}

// InputReal binds a real input buffer.
func (p *Planner) InputReal(data []float64) *RealInput {
	return p.InputRealStrided(data, 1)
}

// InputRealStrided binds every stride-th element of data as the real input
// view. Panics if stride is not positive.
func (p *Planner) InputRealStrided(data []float64, stride int) *RealInput {
	m := p.meta
	m.inStride = checkStride("InputRealStrided", stride)

	return &RealInput{meta: m, in: storage[float64]{data: data, stride: stride}}
}

func checkStride(op string, stride int) int {
	if stride < 1 {
		panic("fftplan: " + op + ": stride must be positive")
	}

	return stride
}

// ComplexInput is the builder stage with a complex input bound. Binding an
// output (or going in-place) selects the transform pairing and moves to a
// terminal stage.
type ComplexInput struct {
	meta meta
	in   storage[complex128]
}

// Rigor sets the planning effort to use for this plan.
func (p *ComplexInput) Rigor(r Rigor) *ComplexInput {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction.
func (p *ComplexInput) Direction(d Direction) *ComplexInput {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *ComplexInput) WisdomRestriction(restrict bool) *ComplexInput {
	p.meta.wisdomRestriction = restrict
	return p
}

// OutputComplex binds a complex output buffer, selecting a
// complex-to-complex transform.
func (p *ComplexInput) OutputComplex(data []complex128) *IoPlanner[complex128, complex128] {
	return p.OutputComplexStrided(data, 1)
}

// OutputComplexStrided is OutputComplex over every stride-th element.
func (p *ComplexInput) OutputComplexStrided(data []complex128, stride int) *IoPlanner[complex128, complex128] {
	m := p.meta
	m.outStride = checkStride("OutputComplexStrided", stride)

	return &IoPlanner[complex128, complex128]{
		meta:  m,
		in:    p.in,
		out:   storage[complex128]{data: data, stride: stride},
		pair:  pairC2C,
		lower: lowerC2C,
	}
}

// OutputReal binds a real output buffer, selecting a complex-to-real
// transform (always backward, input holding the halfcomplex spectrum).
func (p *ComplexInput) OutputReal(data []float64) *IoPlanner[complex128, float64] {
	return p.OutputRealStrided(data, 1)
}

// OutputRealStrided is OutputReal over every stride-th element.
func (p *ComplexInput) OutputRealStrided(data []float64, stride int) *IoPlanner[complex128, float64] {
	m := p.meta
	m.outStride = checkStride("OutputRealStrided", stride)

	return &IoPlanner[complex128, float64]{
		meta:  m,
		in:    p.in,
		out:   storage[float64]{data: data, stride: stride},
		pair:  pairC2R,
		lower: lowerC2R,
	}
}

// Inplace uses the input buffer as both input and output of a
// complex-to-complex transform.
func (p *ComplexInput) Inplace() *InplacePlanner[complex128] {
	m := p.meta
	m.outStride = m.inStride

	return &InplacePlanner[complex128]{
		meta:  m,
		inout: p.in,
		pair:  pairC2C,
		lower: lowerC2C,
	}
}

// RealInput is the builder stage with a real input bound.
type RealInput struct {
	meta meta
	in   storage[float64]
}

// Rigor sets the planning effort to use for this plan.
func (p *RealInput) Rigor(r Rigor) *RealInput {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction.
func (p *RealInput) Direction(d Direction) *RealInput {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *RealInput) WisdomRestriction(restrict bool) *RealInput {
	p.meta.wisdomRestriction = restrict
	return p
}

// OutputComplex binds a complex output buffer, selecting a real-to-complex
// transform (always forward, output receiving the halfcomplex spectrum).
func (p *RealInput) OutputComplex(data []complex128) *IoPlanner[float64, complex128] {
	return p.OutputComplexStrided(data, 1)
}

// OutputComplexStrided is OutputComplex over every stride-th element.
func (p *RealInput) OutputComplexStrided(data []complex128, stride int) *IoPlanner[float64, complex128] {
	m := p.meta
	m.outStride = checkStride("OutputComplexStrided", stride)

	return &IoPlanner[float64, complex128]{
		meta:  m,
		in:    p.in,
		out:   storage[complex128]{data: data, stride: stride},
		pair:  pairR2C,
		lower: lowerR2C,
	}
}

// OutputReal binds a real output buffer, selecting a real-to-real
// transform. The resulting stage has no Plan method: transform kinds must
// be chosen first via Kinds.
func (p *RealInput) OutputReal(data []float64) *R2RPlanner {
	return p.OutputRealStrided(data, 1)
}

// OutputRealStrided is OutputReal over every stride-th element.
func (p *RealInput) OutputRealStrided(data []float64, stride int) *R2RPlanner {
	m := p.meta
	m.outStride = checkStride("OutputRealStrided", stride)

	return &R2RPlanner{meta: m, in: p.in, out: storage[float64]{data: data, stride: stride}}
}

// Inplace uses the input buffer as both input and output of a real-to-real
// transform. Kinds must be chosen before planning.
func (p *RealInput) Inplace() *R2RInplacePlanner {
	m := p.meta
	m.outStride = m.inStride

	return &R2RInplacePlanner{meta: m, inout: p.in}
}

// IoPlanner is a terminal builder stage with distinct input and output
// storages bound and the transform pairing fixed. Dimensions may be set
// any number of times (the last write wins) before Plan lowers the
// specification. For real-to-real pairings this stage is only reachable
// through Kinds, so a kind list is always present.
type IoPlanner[T, U Element] struct {
	meta  meta
	in    storage[T]
	out   storage[U]
	pair  pairing
	lower lowerFunc[T, U]
}

// Rigor sets the planning effort to use for this plan.
func (p *IoPlanner[T, U]) Rigor(r Rigor) *IoPlanner[T, U] {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction.
func (p *IoPlanner[T, U]) Direction(d Direction) *IoPlanner[T, U] {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *IoPlanner[T, U]) WisdomRestriction(restrict bool) *IoPlanner[T, U] {
	p.meta.wisdomRestriction = restrict
	return p
}

// Dim1 configures a one-dimensional transform of length n.
func (p *IoPlanner[T, U]) Dim1(n int) *IoPlanner[T, U] {
	return p.Dims(n)
}

// Dim2 configures a two-dimensional transform, outermost axis first.
func (p *IoPlanner[T, U]) Dim2(n0, n1 int) *IoPlanner[T, U] {
	return p.Dims(n0, n1)
}

// Dim3 configures a three-dimensional transform, outermost axis first.
func (p *IoPlanner[T, U]) Dim3(n0, n1, n2 int) *IoPlanner[T, U] {
	return p.Dims(n0, n1, n2)
}

// Dims configures an N-dimensional transform with tight row-major strides
// derived from the axis lengths, outermost first. Panics on an empty list.
func (p *IoPlanner[T, U]) Dims(lengths ...int) *IoPlanner[T, U] {
	p.meta.setRowMajor(lengths)
	return p
}

// DimsSubArray configures an N-dimensional transform with explicit per-axis
// strides, for transforming a sub-region of a larger array. Panics on an
// empty list.
func (p *IoPlanner[T, U]) DimsSubArray(entries ...Dim) *IoPlanner[T, U] {
	p.meta.setSubArray(entries)
	return p
}

// Batch repeats the transform count times in one execution, each
// repetition offset by the span of one transform on each side.
func (p *IoPlanner[T, U]) Batch(count int) *IoPlanner[T, U] {
	p.meta.setBatch(count)
	return p
}

// BatchDims repeats the transform over explicitly strided batch axes,
// disjoint from the transform's own axes.
func (p *IoPlanner[T, U]) BatchDims(entries ...Dim) *IoPlanner[T, U] {
	p.meta.setBatchDims(entries)
	return p
}

// BindInput replaces the input storage, keeping its element stride. Meant
// for retrying a rejected Plan with a different buffer.
func (p *IoPlanner[T, U]) BindInput(data []T) *IoPlanner[T, U] {
	p.in.data = data
	return p
}

// BindOutput replaces the output storage, keeping its element stride.
func (p *IoPlanner[T, U]) BindOutput(data []U) *IoPlanner[T, U] {
	p.out.data = data
	return p
}

// Plan validates the specification and lowers it into an executable plan.
// On failure the builder and its storages are untouched: fix the reported
// problem and call Plan again. On success the storages belong to the
// returned plan and the builder must not be reused.
func (p *IoPlanner[T, U]) Plan() (*IoPlan[T, U], error) {
	low, err := resolve(&p.meta, p.pair, p.in.logicalLen(), p.out.logicalLen())
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("pairing", p.pair.name).
		Interface("dims", low.dims).
		Interface("howmany", low.howmany).
		Msg("lowering plan")

	desc := p.lower(low.dims, low.howmany, p.in.data, p.out.data,
		p.meta.direction.sign(), p.meta.flags(), low.kinds)
	if desc == nil {
		return nil, ErrPlanFailed
	}

	return &IoPlan[T, U]{desc: desc, in: p.in.data, out: p.out.data}, nil
}

// InplacePlanner is a terminal builder stage with a single storage bound
// as both input and output.
type InplacePlanner[T Element] struct {
	meta  meta
	inout storage[T]
	pair  pairing
	lower lowerFunc[T, T]
}

// Rigor sets the planning effort to use for this plan.
func (p *InplacePlanner[T]) Rigor(r Rigor) *InplacePlanner[T] {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction.
func (p *InplacePlanner[T]) Direction(d Direction) *InplacePlanner[T] {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *InplacePlanner[T]) WisdomRestriction(restrict bool) *InplacePlanner[T] {
	p.meta.wisdomRestriction = restrict
	return p
}

// Dim1 configures a one-dimensional transform of length n.
func (p *InplacePlanner[T]) Dim1(n int) *InplacePlanner[T] {
	return p.Dims(n)
}

// Dim2 configures a two-dimensional transform, outermost axis first.
func (p *InplacePlanner[T]) Dim2(n0, n1 int) *InplacePlanner[T] {
	return p.Dims(n0, n1)
}

// Dim3 configures a three-dimensional transform, outermost axis first.
func (p *InplacePlanner[T]) Dim3(n0, n1, n2 int) *InplacePlanner[T] {
	return p.Dims(n0, n1, n2)
}

// Dims configures an N-dimensional transform with tight row-major strides.
func (p *InplacePlanner[T]) Dims(lengths ...int) *InplacePlanner[T] {
	p.meta.setRowMajor(lengths)
	return p
}

// DimsSubArray configures an N-dimensional transform with explicit
// per-axis strides.
func (p *InplacePlanner[T]) DimsSubArray(entries ...Dim) *InplacePlanner[T] {
	p.meta.setSubArray(entries)
	return p
}

// Batch repeats the transform count times in one execution.
func (p *InplacePlanner[T]) Batch(count int) *InplacePlanner[T] {
	p.meta.setBatch(count)
	return p
}

// BatchDims repeats the transform over explicitly strided batch axes.
func (p *InplacePlanner[T]) BatchDims(entries ...Dim) *InplacePlanner[T] {
	p.meta.setBatchDims(entries)
	return p
}

// BindInOut replaces the combined storage, keeping its element stride.
func (p *InplacePlanner[T]) BindInOut(data []T) *InplacePlanner[T] {
	p.inout.data = data
	return p
}

// Plan validates the specification and lowers it into an executable
// in-place plan. Failure semantics match IoPlanner.Plan.
func (p *InplacePlanner[T]) Plan() (*InplacePlan[T], error) {
	n := p.inout.logicalLen()

	low, err := resolve(&p.meta, p.pair, n, n)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("pairing", p.pair.name).
		Bool("inplace", true).
		Interface("dims", low.dims).
		Interface("howmany", low.howmany).
		Msg("lowering plan")

	desc := p.lower(low.dims, low.howmany, p.inout.data, p.inout.data,
		p.meta.direction.sign(), p.meta.flags(), low.kinds)
	if desc == nil {
		return nil, ErrPlanFailed
	}

	return &InplacePlan[T]{desc: desc, inout: p.inout.data}, nil
}

// R2RPlanner is the terminal stage of a real-to-real transform before its
// kinds are chosen. It has no Plan method: the only way forward is Kinds,
// which makes "real-to-real without a kind" unrepresentable.
type R2RPlanner struct {
	meta meta
	in   storage[float64]
	out  storage[float64]
}

// Rigor sets the planning effort to use for this plan.
func (p *R2RPlanner) Rigor(r Rigor) *R2RPlanner {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction. Real-to-real kinds carry their
// own direction; the setting is recorded but has no effect here.
func (p *R2RPlanner) Direction(d Direction) *R2RPlanner {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *R2RPlanner) WisdomRestriction(restrict bool) *R2RPlanner {
	p.meta.wisdomRestriction = restrict
	return p
}

// Dim1 configures a one-dimensional transform of length n.
func (p *R2RPlanner) Dim1(n int) *R2RPlanner {
	return p.Dims(n)
}

// Dim2 configures a two-dimensional transform, outermost axis first.
func (p *R2RPlanner) Dim2(n0, n1 int) *R2RPlanner {
	return p.Dims(n0, n1)
}

// Dim3 configures a three-dimensional transform, outermost axis first.
func (p *R2RPlanner) Dim3(n0, n1, n2 int) *R2RPlanner {
	return p.Dims(n0, n1, n2)
}

// Dims configures an N-dimensional transform with tight row-major strides.
func (p *R2RPlanner) Dims(lengths ...int) *R2RPlanner {
	p.meta.setRowMajor(lengths)
	return p
}

// DimsSubArray configures an N-dimensional transform with explicit
// per-axis strides.
func (p *R2RPlanner) DimsSubArray(entries ...Dim) *R2RPlanner {
	p.meta.setSubArray(entries)
	return p
}

// Batch repeats the transform count times in one execution.
func (p *R2RPlanner) Batch(count int) *R2RPlanner {
	p.meta.setBatch(count)
	return p
}

// BatchDims repeats the transform over explicitly strided batch axes.
func (p *R2RPlanner) BatchDims(entries ...Dim) *R2RPlanner {
	p.meta.setBatchDims(entries)
	return p
}

// Kinds selects the transform kind per axis (one kind per dimension, or a
// single kind broadcast to all dimensions) and moves to the plannable
// stage. Panics on an empty list or a count that matches neither rule.
func (p *R2RPlanner) Kinds(kinds ...R2RKind) *IoPlanner[float64, float64] {
	m := p.meta
	m.setKinds(kinds)

	return &IoPlanner[float64, float64]{
		meta:  m,
		in:    p.in,
		out:   p.out,
		pair:  pairR2R,
		lower: lowerR2R,
	}
}

// R2RInplacePlanner is the in-place counterpart of R2RPlanner.
type R2RInplacePlanner struct {
	meta  meta
	inout storage[float64]
}

// Rigor sets the planning effort to use for this plan.
func (p *R2RInplacePlanner) Rigor(r Rigor) *R2RInplacePlanner {
	p.meta.rigor = r
	return p
}

// Direction sets the transform direction. Real-to-real kinds carry their
// own direction; the setting is recorded but has no effect here.
func (p *R2RInplacePlanner) Direction(d Direction) *R2RInplacePlanner {
	p.meta.direction = d
	return p
}

// WisdomRestriction requires existing wisdom of at least the requested
// rigor for planning to succeed.
func (p *R2RInplacePlanner) WisdomRestriction(restrict bool) *R2RInplacePlanner {
	p.meta.wisdomRestriction = restrict
	return p
}

// Dim1 configures a one-dimensional transform of length n.
func (p *R2RInplacePlanner) Dim1(n int) *R2RInplacePlanner {
	return p.Dims(n)
}

// Dim2 configures a two-dimensional transform, outermost axis first.
func (p *R2RInplacePlanner) Dim2(n0, n1 int) *R2RInplacePlanner {
	return p.Dims(n0, n1)
}

// Dim3 configures a three-dimensional transform, outermost axis first.
func (p *R2RInplacePlanner) Dim3(n0, n1, n2 int) *R2RInplacePlanner {
	return p.Dims(n0, n1, n2)
}

// Dims configures an N-dimensional transform with tight row-major strides.
func (p *R2RInplacePlanner) Dims(lengths ...int) *R2RInplacePlanner {
	p.meta.setRowMajor(lengths)
	return p
}

// DimsSubArray configures an N-dimensional transform with explicit
// per-axis strides.
func (p *R2RInplacePlanner) DimsSubArray(entries ...Dim) *R2RInplacePlanner {
	p.meta.setSubArray(entries)
	return p
}

// Batch repeats the transform count times in one execution.
func (p *R2RInplacePlanner) Batch(count int) *R2RInplacePlanner {
	p.meta.setBatch(count)
	return p
}

// BatchDims repeats the transform over explicitly strided batch axes.
func (p *R2RInplacePlanner) BatchDims(entries ...Dim) *R2RInplacePlanner {
	p.meta.setBatchDims(entries)
	return p
}

// Kinds selects the transform kind per axis and moves to the plannable
// in-place stage.
func (p *R2RInplacePlanner) Kinds(kinds ...R2RKind) *InplacePlanner[float64] {
	m := p.meta
	m.setKinds(kinds)

	return &InplacePlanner[float64]{
		meta:  m,
		inout: p.inout,
		pair:  pairR2R,
		lower: lowerR2R,
	}
}
