package dataset

// TaskType is the single problem framing derived from a descriptor's flags.
type TaskType string

const (
	TaskRegression          TaskType = "regression"
	TaskImageClassification TaskType = "image-classification"
	TaskMultiLabel          TaskType = "multilabel"
	TaskObjectDetection     TaskType = "object-detection"
	TaskBinary              TaskType = "binary-classification"
	TaskMulticlass          TaskType = "multiclass-classification"
)

// taskRules is evaluated top to bottom; the first matching rule wins.
// Flag combinations overlap (a multilabel fixture may also be vision), so
// the order here is the precedence contract.
var taskRules = []struct {
	match func(*Descriptor) bool
	task  TaskType
}{
	{func(d *Descriptor) bool { return d.IsRegression }, TaskRegression},
	{func(d *Descriptor) bool { return d.IsImageClassification }, TaskImageClassification},
	{func(d *Descriptor) bool { return d.IsMultiLabel }, TaskMultiLabel},
	{func(d *Descriptor) bool { return d.IsObjectDetection }, TaskObjectDetection},
	{func(d *Descriptor) bool { return d.IsMulticlass }, TaskMulticlass},
}

// TaskType resolves the descriptor's flags to exactly one task type.
// Generic classification without the multiclass flag is binary.
func (d *Descriptor) TaskType() TaskType {
	for _, r := range taskRules {
		if r.match(d) {
			return r.task
		}
	}
	return TaskBinary
}

// AllTaskTypes lists every task type in precedence order.
func AllTaskTypes() []TaskType {
	return []TaskType{
		TaskRegression,
		TaskImageClassification,
		TaskMultiLabel,
		TaskObjectDetection,
		TaskBinary,
		TaskMulticlass,
	}
}
