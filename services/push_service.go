package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type snsPublisher interface {
	Publish(ctx context.Context, in *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

// PushService publishes alerts to an SNS topic. Subscribers filter on the
// user_id message attribute.
type PushService struct {
	sns      snsPublisher
	topicArn string
}

func NewPushService(ctx context.Context, region, topicArn string) (*PushService, error) {
	if topicArn == "" {
		return nil, errors.New("SNS_TOPIC_ARN not set")
	}
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{sns: awssns.NewFromConfig(cfg), topicArn: topicArn}, nil
}

func (p *PushService) Publish(ctx context.Context, userID, title, body string, attrs map[string]string) error {
	payload := map[string]any{
		"user_id": userID,
		"title":   title,
		"body":    body,
		"data":    attrs,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msgAttrs := map[string]snstypes.MessageAttributeValue{
		"user_id": {DataType: aws.String("String"), StringValue: aws.String(userID)},
	}
	for k, v := range attrs {
		msgAttrs[k] = snstypes.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
	}

	_, err = p.sns.Publish(ctx, &awssns.PublishInput{
		TopicArn:          aws.String(p.topicArn),
		Subject:           aws.String(title),
		Message:           aws.String(string(b)),
		MessageAttributes: msgAttrs,
	})
	return err
}
