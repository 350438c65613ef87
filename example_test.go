package memcell_test

import (
	"fmt"

	"github.com/toejough/memcell"
)

func ExampleNew() {
	cell := memcell.New(5)

	fmt.Println(cell.Current())
	fmt.Println(cell.HasPrevious())
	// Output:
	// 5
	// false
}

func ExampleMemoryCell_Update() {
	cell := memcell.New(5)
	cell.Update(10)

	previous, _ := cell.Previous()
	fmt.Println(cell.Current(), previous)
	// Output: 10 5
}

func ExampleMemoryCell_TakeCurrent() {
	cell := memcell.New("Joe")

	fmt.Println(cell.TakeCurrent())
	// Output: Joe
}

func ExampleMemoryCell_TakePrevious() {
	cell := memcell.New(5)
	cell.Update(10)

	previous, ok := cell.TakePrevious()
	fmt.Println(previous, ok)
	// Output: 5 true
}

func ExampleMemoryCell_TakeBoth() {
	cell := memcell.New(5)
	cell.Update(10)

	current, previous, ok := cell.TakeBoth()
	fmt.Println(current, previous, ok)
	// Output: 10 5 true
}

func ExampleMemoryCell_Swap() {
	cell := memcell.New("draft")
	cell.Update("final")

	if cell.Swap() {
		fmt.Println(cell.Current())
	}
	// Output: draft
}

func ExampleMemoryCell_String() {
	cell := memcell.New("a")
	cell.Update("b")

	fmt.Println(cell)
	// Output: MemoryCell(current: b, previous: a)
}
