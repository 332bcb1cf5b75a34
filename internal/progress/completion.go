package progress

// UpdateTopicCompletion merges one finished (topic, dimension) into the
// completion set. Revisiting an already-completed dimension is a no-op:
// the learner gets no duplicate credit. totalDimensions only applies when
// the topic is seen for the first time; an existing record keeps the
// count it was created with.
func UpdateTopicCompletion(completions map[string]*TopicCompletion, topic, dimension string, today DateStamp, totalDimensions int) map[string]*TopicCompletion {
	if completions == nil {
		completions = make(map[string]*TopicCompletion)
	}
	if totalDimensions <= 0 {
		totalDimensions = DefaultTotalDimensions
	}

	tc, ok := completions[topic]
	if !ok {
		tc = &TopicCompletion{
			Topic:               topic,
			DimensionsCompleted: []string{dimension},
			TotalDimensions:     totalDimensions,
			CompletedAt:         []DateStamp{today},
		}
		tc.recompute()
		completions[topic] = tc
		return completions
	}

	for _, d := range tc.DimensionsCompleted {
		if d == dimension {
			return completions
		}
	}

	tc.DimensionsCompleted = append(tc.DimensionsCompleted, dimension)
	tc.CompletedAt = append(tc.CompletedAt, today)
	tc.recompute()
	return completions
}
