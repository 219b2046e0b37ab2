package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
	resolver  *queueResolver
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		resolver:  &queueResolver{client: sqsClient},
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue,
// given either as a queue name or a queue URL. Attributes become string message attributes.
// It returns the SQS message id.
func (s *Sender) SendMessage(ctx context.Context, queue string, body any, attributes map[string]string) (string, error) {
	queueURL, err := s.resolver.resolve(ctx, queue)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queue, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(jsonBody)),
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			input.MessageAttributes[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}

	output, err := s.sqsClient.SendMessage(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queue, err)
	}

	return aws.ToString(output.MessageId), nil
}
