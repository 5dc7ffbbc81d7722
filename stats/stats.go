package stats

import (
	"math"
	"math/rand"
	"sort"
)

func Srange(size int) []int {
	sample := make([]int, 0, size)
	for i := 0; i < size; i++ {
		sample = append(sample, i)
	}
	return sample
}

// Sample picks size distinct indices out of [0, populationSize) without
// replacement. The indices come back in ascending order.
func Sample(size, populationSize int) (sample []int) {
	if size >= populationSize {
		return Srange(populationSize)
	}
	items := Srange(populationSize)
	for i := 0; i < size; i++ {
		j := i + rand.Intn(populationSize-i)
		items[i], items[j] = items[j], items[i]
	}
	sample = items[:size]
	sort.Ints(sample)
	return sample
}

func Sum(list []float64) float64 {
	var sum float64
	for _, item := range list {
		sum += item
	}
	return sum
}

func Mean(list []float64) float64 {
	if len(list) == 0 {
		return 0
	}
	return Sum(list) / float64(len(list))
}

func StdDev(list []float64) float64 {
	if len(list) < 2 {
		return 0
	}
	mean := Mean(list)
	var ss float64
	for _, item := range list {
		ss += (item - mean) * (item - mean)
	}
	return math.Sqrt(ss / float64(len(list)-1))
}

func Round(val float64, places int) (newVal float64) {
	var round float64
	roundOn := .5
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	_div := math.Copysign(div, val)
	_roundOn := math.Copysign(roundOn, val)
	if _div >= _roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	return round / pow
}
