package list_test

import (
	"fmt"

	"github.com/hasbyte1/go-rambda-utils/list"
)

func ExampleMap() {
	doubled := list.Map(func(n int) int { return n * 2 }, []int{1, 2, 3})
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExampleFilter() {
	evens := list.Filter(func(n int) bool { return n%2 == 0 }, []int{1, 2, 3, 4, 5})
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleAdjust() {
	fmt.Println(list.Adjust(1, func(n int) int { return n + 10 }, []int{0, 100, 2}))
	// Output: [0 110 2]
}

func ExampleRange() {
	fmt.Println(list.Range(0, 5))
	fmt.Println(list.Range(5, 3))
	// Output:
	// [0 1 2 3 4]
	// []
}

func ExampleSplitEvery() {
	groups, _ := list.SplitEvery(2, []int{1, 2, 3, 4, 5})
	for _, g := range groups {
		fmt.Println(g)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleGroupBy() {
	groups := list.GroupBy(func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	}, []int{1, 2, 3, 4})
	fmt.Println(groups["even"])
	// Output: [2 4]
}

func ExampleReduce() {
	sum := list.Reduce(func(acc, n int) int { return acc + n }, 0, []int{1, 2, 3, 4})
	fmt.Println(sum)
	// Output: 10
}
