package models

import "time"

// Report holds the outcome of a single benchmark run.
type Report struct {
	Count       int           // Count is the number of pairs processed.
	Average     float64       // Average is the mean haversine distance in kilometers.
	LoadTime    time.Duration // LoadTime covers reading and decoding the dataset.
	ComputeTime time.Duration // ComputeTime covers summing the distances and dividing by Count.
	Throughput  float64       // Throughput is Count divided by ComputeTime, in distances per second.
}
