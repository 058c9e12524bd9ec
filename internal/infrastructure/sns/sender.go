package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/config"
	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
)

// Sender is the AWS SNS gateway implementation, selected with SMS_PROVIDER=sns.
type Sender struct {
	client *sns.Client
}

func NewSender(cfg *config.Config) (*Sender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &Sender{client: sns.NewFromConfig(awsCfg)}, nil
}

// Send publishes the composed message directly to the phone number.
// SNS has no per-message delivery status at publish time, so the receipt
// status is the fixed "published".
func (s *Sender) Send(ctx context.Context, to, body string) (*domain.Receipt, error) {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &to,
		Message:     &body,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Receipt{MessageID: aws.ToString(out.MessageId), Status: "published"}, nil
}
