package checks

import (
	"strconv"

	golinq "github.com/deadlyengineer/linq-with-go"
)

var sampleElems = []int{0, 13, 40, 12, 50, 12, 60}

func sample() *golinq.Sequence[int] {
	return golinq.From(sampleElems)
}

// RegisterAll registers every built-in suite with r.
func RegisterAll(r *Registry) {
	registerGetter(r)
	registerConditionalJudgement(r)
	registerBasicCalc(r)
	registerFiltering(r)
	registerBasicOperation(r)
	registerConversion(r)
	registerSetAlgebra(r)
	registerExport(r)
}

func registerGetter(r *Registry) {
	const suite = "Getter"

	r.Add(suite, "First", func() error {
		first, err := sample().First()
		return EqualErr(0, first, err)
	})
	r.Add(suite, "Last", func() error {
		last, err := sample().Last()
		return EqualErr(60, last, err)
	})
	r.Add(suite, "At", func() error {
		elem, err := sample().At(2)
		return EqualErr(40, elem, err)
	})
	r.Add(suite, "AtOutOfRange", func() error {
		_, err := sample().At(7)
		return ErrorIs(err, golinq.ErrIndexOutOfRange)
	})
	r.Add(suite, "FirstFunc", func() error {
		first, err := sample().FirstFunc(func(elem int) bool { return elem != 0 })
		return EqualErr(13, first, err)
	})
	r.Add(suite, "LastFunc", func() error {
		last, err := sample().LastFunc(func(elem int) bool { return elem < 12 })
		return EqualErr(0, last, err)
	})
	r.Add(suite, "FirstEmpty", func() error {
		_, err := golinq.Of[int]().First()
		return ErrorIs(err, golinq.ErrEmptySequence)
	})
}

func registerConditionalJudgement(r *Registry) {
	const suite = "ConditionalJudgement"

	partial := golinq.Of(13, 12, 60)
	notPartial := golinq.Of(13, 12, 59)

	r.Add(suite, "All", func() error {
		return True(sample().All(func(elem int) bool { return elem >= 0 }))
	})
	r.Add(suite, "All2", func() error {
		return False(sample().All(func(elem int) bool { return elem > 0 }))
	})
	r.Add(suite, "Any", func() error {
		return True(sample().Any(func(elem int) bool { return elem == 0 }))
	})
	r.Add(suite, "Any2", func() error {
		return False(sample().Any(func(elem int) bool { return elem == 1 }))
	})
	r.Add(suite, "None", func() error {
		return True(sample().None(func(elem int) bool { return elem == 100 }))
	})
	r.Add(suite, "None2", func() error {
		return False(sample().None(func(elem int) bool { return elem == 0 }))
	})
	r.Add(suite, "SequenceEqual", func() error {
		return True(golinq.SequenceEqual(sample(), golinq.Cast[int](golinq.Cast[float64](sample()))))
	})
	r.Add(suite, "SequenceEqual2", func() error {
		return False(golinq.SequenceEqual(sample(), partial))
	})
	r.Add(suite, "Contain", func() error {
		return True(golinq.Contain(sample(), 0))
	})
	r.Add(suite, "Contain2", func() error {
		return False(golinq.Contain(sample(), 1))
	})
	r.Add(suite, "Contain3", func() error {
		return True(golinq.ContainAll(sample(), partial))
	})
	r.Add(suite, "Contain4", func() error {
		return False(golinq.ContainAll(sample(), notPartial))
	})
	r.Add(suite, "Include", func() error {
		return True(golinq.Include(sample(), 0))
	})
	r.Add(suite, "Include3", func() error {
		return True(golinq.IncludeAll(sample(), partial))
	})
}

func registerBasicCalc(r *Registry) {
	const suite = "BasicCalc"

	r.Add(suite, "Count", func() error {
		return Equal(len(sampleElems), sample().Count())
	})
	r.Add(suite, "Count2", func() error {
		return Equal(2, golinq.CountOf(sample(), 12))
	})
	r.Add(suite, "Count3", func() error {
		return Equal(3, sample().CountFunc(func(elem int) bool { return elem <= 12 }))
	})
	r.Add(suite, "Sum", func() error {
		return Equal(187, golinq.Sum(sample()))
	})
	r.Add(suite, "Average", func() error {
		avg, err := golinq.Average(sample())
		return EqualErr(187/7, avg, err)
	})
	r.Add(suite, "CastAverage", func() error {
		avg, err := golinq.AverageAs[float32](sample())
		return EqualErr(float32(187)/float32(7), avg, err)
	})
	r.Add(suite, "Mean", func() error {
		mean, err := golinq.Mean(sample())
		return EqualErr(187/7, mean, err)
	})
	r.Add(suite, "CastMean", func() error {
		mean, err := golinq.MeanAs[float32](sample())
		return EqualErr(float32(187)/float32(7), mean, err)
	})
	r.Add(suite, "Minimum", func() error {
		minimum, err := golinq.Minimum(sample())
		return EqualErr(0, minimum, err)
	})
	r.Add(suite, "Maximum", func() error {
		maximum, err := golinq.Maximum(sample())
		return EqualErr(60, maximum, err)
	})
	r.Add(suite, "Median", func() error {
		median, err := golinq.Median(sample())
		return EqualErr(13, median, err)
	})
	r.Add(suite, "Variance", func() error {
		variance, err := golinq.Variance(sample())
		return EqualErr(452, variance, err)
	})
	r.Add(suite, "StandardDeviation", func() error {
		stdDev, err := golinq.StandardDeviation(sample())
		return EqualErr(21, stdDev, err)
	})
	r.Add(suite, "Aggregate", func() error {
		product := golinq.Aggregate(sample(), 1, func(acc int, elem int) int { return acc * elem })
		return Equal(0, product)
	})
	r.Add(suite, "RangeSum", func() error {
		return Equal(5050, golinq.Sum(golinq.Range(1, 100)))
	})
}

func registerFiltering(r *Registry) {
	const suite = "Filtering"

	r.Add(suite, "Where", func() error {
		return Equal([]int{0, 40, 12, 50, 12, 60}, sample().Where(func(elem int) bool { return elem%2 == 0 }).ToSlice())
	})
	r.Add(suite, "EqualTo", func() error {
		return Equal([]int{12, 12}, golinq.EqualTo(sample(), 12).ToSlice())
	})
	r.Add(suite, "NotEqualTo", func() error {
		return Equal([]int{0, 13, 40, 50, 60}, golinq.NotEqualTo(sample(), 12).ToSlice())
	})
	r.Add(suite, "LessThan", func() error {
		return Equal([]int{0, 12, 12}, golinq.LessThan(sample(), 13).ToSlice())
	})
	r.Add(suite, "LessThanOrEqualTo", func() error {
		return Equal([]int{0, 13, 12, 12}, golinq.LessThanOrEqualTo(sample(), 13).ToSlice())
	})
	r.Add(suite, "GreaterThan", func() error {
		return Equal([]int{40, 50, 60}, golinq.GreaterThan(sample(), 13).ToSlice())
	})
	r.Add(suite, "GreaterThanOrEqualTo", func() error {
		return Equal([]int{13, 40, 50, 60}, golinq.GreaterThanOrEqualTo(sample(), 13).ToSlice())
	})
}

func registerBasicOperation(r *Registry) {
	const suite = "BasicOperation"

	r.Add(suite, "Skip", func() error {
		ints, err := sample().Skip(2)
		if err != nil {
			return err
		}

		return Equal([]int{40, 12, 50, 12, 60}, ints.ToSlice())
	})
	r.Add(suite, "SkipOutOfRange", func() error {
		_, err := sample().Skip(8)
		return ErrorIs(err, golinq.ErrIndexOutOfRange)
	})
	r.Add(suite, "SkipWhile", func() error {
		return Equal([]int{40, 12, 50, 12, 60}, sample().SkipWhile(func(elem int) bool { return elem <= 13 }).ToSlice())
	})
	r.Add(suite, "Take", func() error {
		return Equal([]int{0, 13, 40}, sample().Take(3).ToSlice())
	})
	r.Add(suite, "TakeWhile", func() error {
		return Equal([]int{0, 13, 40, 12}, sample().TakeWhile(func(elem int) bool { return elem <= 40 }).ToSlice())
	})
	r.Add(suite, "Reverse", func() error {
		return Equal([]int{60, 12, 50, 12, 40, 13, 0}, sample().Reverse().ToSlice())
	})
	r.Add(suite, "Rotate", func() error {
		return Equal([]int{40, 12, 50, 12, 60, 0, 13}, sample().Rotate(2).ToSlice())
	})
	r.Add(suite, "OrderBy", func() error {
		return Equal([]int{0, 12, 12, 13, 40, 50, 60}, golinq.OrderBy(sample()).ToSlice())
	})
	r.Add(suite, "OrderBy2", func() error {
		return Equal([]int{60, 50, 40, 13, 12, 12, 0}, sample().OrderByFunc(func(a int, b int) bool { return a > b }).ToSlice())
	})
	r.Add(suite, "OrderByDescending", func() error {
		return Equal([]int{60, 50, 40, 13, 12, 12, 0}, golinq.OrderByDescending(sample()).ToSlice())
	})
}

func registerConversion(r *Registry) {
	const suite = "Conversion"

	r.Add(suite, "Cast", func() error {
		return Equal([]float64{0, 13, 40, 12, 50, 12, 60}, golinq.Cast[float64](sample()).ToSlice())
	})
	r.Add(suite, "Square", func() error {
		return Equal([]int{0, 169, 1600, 144, 2500, 144, 3600}, golinq.Square(sample()).ToSlice())
	})
	r.Add(suite, "Select", func() error {
		cubes := sample().Select(func(elem int) int { return elem * elem * elem })
		return Equal([]int{0, 2197, 64000, 1728, 125000, 1728, 216000}, cubes.ToSlice())
	})
	r.Add(suite, "SelectType", func() error {
		return Equal([]string{"0", "13", "40"}, golinq.ToSliceSelect(sample().Take(3), strconv.Itoa))
	})
}

func registerSetAlgebra(r *Registry) {
	const suite = "SetAlgebra"

	r.Add(suite, "Distinct", func() error {
		return Equal([]int{0, 12, 13, 40, 50, 60}, golinq.Distinct(golinq.OrderBy(sample())).ToSlice())
	})
	r.Add(suite, "Concat", func() error {
		return Equal([]int{0, 13, 40, 12, 50, 12, 60, 1, 2}, sample().Concat(golinq.Of(1, 2)).ToSlice())
	})
	r.Add(suite, "Except", func() error {
		return Equal([]int{12, 12, 40, 50}, golinq.Except(sample(), golinq.Of(60, 0, 99, 13)).ToSlice())
	})
	r.Add(suite, "Union", func() error {
		return Equal([]int{1, 2, 3, 4, 5}, golinq.Union(golinq.Of(5, 1, 3), golinq.Of(4, 3, 2)).ToSlice())
	})
	r.Add(suite, "Intersect", func() error {
		return Equal([]int{12, 40, 60}, golinq.Intersect(sample(), golinq.Of(60, 1, 12, 40)).ToSlice())
	})
}

func registerExport(r *Registry) {
	const suite = "Export"

	r.Add(suite, "ToMap", func() error {
		mapp := golinq.ToMapSelect(sample(), func(elem int) int { return elem % 10 }, strconv.Itoa)
		return Equal(map[int]string{0: "0", 2: "12", 3: "13"}, mapp)
	})
	r.Add(suite, "ToMultiMap", func() error {
		mapp := golinq.ToMultiMap(sample(), func(elem int) int { return elem % 10 })
		return Equal(map[int][]int{0: {0, 40, 50, 60}, 2: {12, 12}, 3: {13}}, mapp)
	})
	r.Add(suite, "Immutable", func() error {
		ints := sample()
		_ = golinq.OrderBy(ints).Reverse().Rotate(3)

		return Equal(sampleElems, ints.ToSlice())
	})
}
