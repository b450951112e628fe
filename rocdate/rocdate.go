// Package rocdate converts Republic of China (Minguo) calendar dates, as
// returned by the Taiwan Stock Exchange, into Gregorian ISO-8601 dates.
package rocdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Offset define the fixed offset between ROC and Gregorian years
const Offset = 1911

// ErrInvalidDate invalid ROC date error
var ErrInvalidDate = errors.New("invalid ROC date")

// ToISO convert a ROC date string like "109/01/02" to "2020-01-02".
// The input must decompose into exactly three numeric components.
func ToISO(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	components := make([]int, len(parts))
	for index, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}

		components[index] = value
	}

	return fmt.Sprintf("%04d-%02d-%02d", components[0]+Offset, components[1], components[2]), nil
}
