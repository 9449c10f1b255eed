package utils

import "time"

const dayDuration = 24 * time.Hour

// RentalDays returns the number of billable days for the half-open interval
// [pickupAt, returnAt), rounding any partial day up. A 25-hour rental is two
// days; anything shorter than a full day is one.
func RentalDays(pickupAt, returnAt time.Time) int32 {
	d := returnAt.Sub(pickupAt)
	if d <= 0 {
		return 0
	}
	days := int32(d / dayDuration)
	if d%dayDuration > 0 {
		days++
	}
	return days
}

// ComputePrice returns the total rental price: billable days times the daily
// rate in effect at creation time. The result is always an exact integer
// multiple of the rate.
func ComputePrice(pickupAt, returnAt time.Time, dailyRate int32) int32 {
	return RentalDays(pickupAt, returnAt) * dailyRate
}
