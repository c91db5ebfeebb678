// Package selection picks the questions a user should attempt next: it
// filters the candidate pool, biases toward under-attempted content, and
// draws a bounded subset via a seeded shuffle so selection is reproducible
// under test.
package selection
