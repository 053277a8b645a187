// Package i18n holds the static Arabic and English UI strings.
package i18n

import (
	"fmt"
	"strings"

	"autoparts-storefront/internal/state/lang"
)

// Table maps section -> key -> text.
type Table map[string]map[string]string

// For returns the table for l; unknown languages get Arabic.
func For(l lang.Lang) Table {
	if l == lang.English {
		return english
	}
	return arabic
}

// T looks up a dotted key such as "cart.title". A missing key returns the key itself.
func T(l lang.Lang, key string) string {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return key
	}
	if v, ok := For(l)[section][name]; ok {
		return v
	}
	return key
}

func PartsCount(l lang.Lang, n int) string {
	if l == lang.English {
		return fmt.Sprintf("%d parts", n)
	}
	return fmt.Sprintf("%d قطعة", n)
}

var statusLabels = map[lang.Lang]map[string]string{
	lang.Arabic: {
		"pending":    "قيد المراجعة",
		"confirmed":  "مؤكد",
		"processing": "جاري التجهيز",
		"shipped":    "في الطريق",
		"delivered":  "تم التسليم",
		"cancelled":  "ملغي",
	},
	lang.English: {
		"pending":    "Pending",
		"confirmed":  "Confirmed",
		"processing": "Processing",
		"shipped":    "Shipped",
		"delivered":  "Delivered",
		"cancelled":  "Cancelled",
	},
}

// StatusLabel returns the display label for an order status, or the status itself.
func StatusLabel(l lang.Lang, status string) string {
	labels := statusLabels[lang.Arabic]
	if l == lang.English {
		labels = statusLabels[lang.English]
	}
	if v, ok := labels[status]; ok {
		return v
	}
	return status
}
