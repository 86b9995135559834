package calendar_test

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/wcl/internal/calendar"
)

func ExampleDay_Format() {
	day := calendar.NewDay(time.Date(2022, time.February, 3, 0, 0, 0, 0, time.UTC), "en")
	fmt.Println(day.Format("YYYY-MM-DD"))
	fmt.Println(day.Format("DDDD D MMMM"))
	// Output:
	// 2022-02-03
	// Thursday 3 February
}

func ExampleCalendar_MonthDaysGrid() {
	cal := calendar.New(2022, 6, "en")
	grid := cal.MonthDaysGrid()
	fmt.Println(cal.Header(), len(grid), grid[0].Format("D MMM"))
	// Output: June, 2022 33 29 May
}
