package models

import "time"

const (
	PatternUpgrade    = "PatId1"
	PatternChild      = "PatId2"
	PatternDEINeeded  = "PatId3"
	ActionUpgrade     = "UPGRADE"
	ActionChild       = "CHILD"
	ActionDEINeeded   = "DEI-NEEDED"
	DetectionTimeZone = "IST"

	// DetectionTimeLayout is the timestamp format written to detection files.
	DetectionTimeLayout = "2006-01-02 15:04:05"
)

// DetectionLocation is the fixed UTC+05:30 zone detection timestamps are rendered in.
var DetectionLocation = time.FixedZone(DetectionTimeZone, 5*60*60+30*60)

// DetectionEventHeader is the column order of a serialized detection batch.
var DetectionEventHeader = []string{
	"YStartTime", "detectionTime", "patternId", "ActionType", "customerName", "merchantId",
}

// DetectionEvent signals that a pattern's condition holds at evaluation time.
// CustomerName is empty for merchant-level patterns.
type DetectionEvent struct {
	StartTime     time.Time `json:"YStartTime"`
	DetectionTime time.Time `json:"detectionTime"`
	PatternID     string    `json:"patternId"`
	ActionType    string    `json:"ActionType"`
	CustomerName  string    `json:"customerName"`
	MerchantID    string    `json:"merchantId"`
}

// NewDetectionEvent stamps both timestamps with the evaluation time.
func NewDetectionEvent(patternID, actionType, customerName, merchantID string, evaluatedAt time.Time) DetectionEvent {
	return DetectionEvent{
		StartTime:     evaluatedAt,
		DetectionTime: evaluatedAt,
		PatternID:     patternID,
		ActionType:    actionType,
		CustomerName:  customerName,
		MerchantID:    merchantID,
	}
}

func FormatDetectionTime(t time.Time) string {
	return t.In(DetectionLocation).Format(DetectionTimeLayout)
}

// CSVRecord renders the event in DetectionEventHeader order.
func (e *DetectionEvent) CSVRecord() []string {
	return []string{
		FormatDetectionTime(e.StartTime),
		FormatDetectionTime(e.DetectionTime),
		e.PatternID,
		e.ActionType,
		e.CustomerName,
		e.MerchantID,
	}
}

// DetectionMessage is the JSON payload published for a detection batch.
type DetectionMessage struct {
	BatchIndex int                  `json:"batch_index"`
	Events     []DetectionEventJSON `json:"events"`
}

type DetectionEventJSON struct {
	YStartTime    string `json:"YStartTime"`
	DetectionTime string `json:"detectionTime"`
	PatternID     string `json:"patternId"`
	ActionType    string `json:"ActionType"`
	CustomerName  string `json:"customerName"`
	MerchantID    string `json:"merchantId"`
}

func NewDetectionMessage(index int, events []DetectionEvent) DetectionMessage {
	msg := DetectionMessage{BatchIndex: index, Events: make([]DetectionEventJSON, 0, len(events))}
	for _, e := range events {
		msg.Events = append(msg.Events, DetectionEventJSON{
			YStartTime:    FormatDetectionTime(e.StartTime),
			DetectionTime: FormatDetectionTime(e.DetectionTime),
			PatternID:     e.PatternID,
			ActionType:    e.ActionType,
			CustomerName:  e.CustomerName,
			MerchantID:    e.MerchantID,
		})
	}
	return msg
}
