package AIService

import (
	"fmt"
	"strings"

	"github.com/caprice1026-disc/aws-parody-page/types"
)

// OfflineServiceSpec fabricates a plausible page from the keyword alone, with
// no network access. Output is deterministic for a given (keyword, lang, tone)
// triple and always passes artifact validation.
func OfflineServiceSpec(keyword string, lang types.Language, tone types.Tone) *types.ServiceSpec {
	if lang == types.LanguageEnglish {
		return offlineSpecEnglish(keyword, tone)
	}
	return offlineSpecJapanese(keyword, tone)
}

func offlineSpecJapanese(keyword string, tone types.Tone) *types.ServiceSpec {
	serviceName := "AWS Elastic " + keyword

	scale := "クラウド級"
	if tone == types.ToneOverkill {
		scale = "銀河級"
	}
	tagline := fmt.Sprintf("%s を、%sの可用性で。", keyword, scale)

	return &types.ServiceSpec{
		ServiceName: serviceName,
		Tagline:     tagline,
		Summary: fmt.Sprintf(
			"%s は、%s のライフサイクルをフルマネージドで最適化し、スケーラブルでセキュアな運用を容易にします。AWS の信頼性と統合により、設計から運用、可観測性までを一貫して提供します。",
			serviceName, keyword,
		),
		Hero: types.Hero{
			Title:    serviceName,
			Subtitle: fmt.Sprintf("フルマネージドな %s 基盤", keyword),
			Tagline:  tagline,
		},
		Highlights: []string{
			"フルマネージドで運用負荷を大幅削減",
			"需要に応じた自動スケーリング",
			"IAM と統合したロールベースアクセス制御",
			"VPC 内でのセキュアな分離実行",
		},
		Features: []types.Feature{
			{
				Name:        "フルマネージドオーケストレーション",
				Description: fmt.Sprintf("高可用なコントロールプレーンで %s をオーケストレーションします。", keyword),
				Benefit:     "運用チームの手作業を排除します。",
			},
			{
				Name:        "CloudWatch 統合モニタリング",
				Description: "メトリクスとログを CloudWatch に一元集約します。",
				Benefit:     "障害の兆候を早期に検知できます。",
			},
			{
				Name:        "インテリジェントトラフィック分配",
				Description: "ALB と連携してトラフィックを自動的に最適配置します。",
				Benefit:     "ピーク時でも応答性能を維持します。",
			},
		},
		Integrations: []string{"IAM", "VPC", "CloudWatch", "ALB", "Lambda", "S3", "RDS", "KMS", "ECR"},
		GettingStarted: []string{
			"AWS アカウントで本サービスを有効化",
			fmt.Sprintf("必要な IAM ロールを作成し %s 用ポリシーを適用", keyword),
			"VPC/サブネット/セキュリティグループを設定",
			fmt.Sprintf("%s のワークロード定義を登録してデプロイ", keyword),
			"CloudWatch でメトリクスとログを確認",
		},
		Pricing: []types.PricingTier{
			{
				Tier:         "無料利用枠",
				PricePerUnit: "$0.00",
				Unit:         "月間 100 ジョブまで",
				Notes:        strPtr("無料利用枠を超過した分は Standard 料金が適用されます。"),
			},
			{
				Tier:         "Standard",
				PricePerUnit: "$0.08",
				Unit:         "ジョブ時間",
				Notes:        nil,
			},
			{
				Tier:         "Enterprise",
				PricePerUnit: "$0.05",
				Unit:         "ジョブ時間",
				Notes:        strPtr("年間コミットが前提です。データ転送料金は別途適用されます。"),
			},
		},
		SampleCLI: fmt.Sprintf(
			"aws elastic-%s-service create --name demo --replicas 3 --region ap-northeast-1",
			cliSlug(keyword),
		),
		FAQs: []types.FAQ{
			{Q: "オンプレミスでも動きますか？", A: "はい。AWS Outposts やハイブリッド構成に対応します。"},
			{Q: "スケーリングの指標は？", A: "CPU/メモリ/カスタムメトリクスに基づくポリシーを設定できます。"},
			{Q: "セキュリティは？", A: "IAM/KMS/PrivateLink など標準機能と統合されています。"},
		},
		Disclaimers: []string{
			"本サービスは実在しません。AWS 構文のパロディとして生成されたものです。",
			"記載の価格および機能はすべて架空のものです。",
		},
	}
}

func offlineSpecEnglish(keyword string, tone types.Tone) *types.ServiceSpec {
	serviceName := "AWS Elastic " + keyword

	scale := "Cloud-scale"
	if tone == types.ToneOverkill {
		scale = "Galactic-scale"
	}
	tagline := fmt.Sprintf("%s availability for %s.", scale, keyword)

	return &types.ServiceSpec{
		ServiceName: serviceName,
		Tagline:     tagline,
		Summary: fmt.Sprintf(
			"%s is a fully managed service that optimizes the %s lifecycle for scalable and secure operation. Backed by AWS reliability and integrations, it covers everything from design through operations and observability.",
			serviceName, keyword,
		),
		Hero: types.Hero{
			Title:    serviceName,
			Subtitle: fmt.Sprintf("A fully managed foundation for %s", keyword),
			Tagline:  tagline,
		},
		Highlights: []string{
			"Fully managed to cut operational overhead",
			"Automatic scaling that follows demand",
			"Role-based access control integrated with IAM",
			"Secure isolated execution inside your VPC",
		},
		Features: []types.Feature{
			{
				Name:        "Fully managed orchestration",
				Description: fmt.Sprintf("A highly available control plane orchestrates %s end to end.", keyword),
				Benefit:     "Removes manual toil from the operations team.",
			},
			{
				Name:        "Unified CloudWatch monitoring",
				Description: "Metrics and logs are aggregated into CloudWatch.",
				Benefit:     "Surfaces early warning signs before incidents.",
			},
			{
				Name:        "Intelligent traffic distribution",
				Description: "Works with ALB to place traffic automatically.",
				Benefit:     "Keeps response times steady at peak load.",
			},
		},
		Integrations: []string{"IAM", "VPC", "CloudWatch", "ALB", "Lambda", "S3", "RDS", "KMS", "ECR"},
		GettingStarted: []string{
			"Enable the service in your AWS account",
			fmt.Sprintf("Create the required IAM role and attach the %s policy", keyword),
			"Configure your VPC, subnets, and security groups",
			fmt.Sprintf("Register a %s workload definition and deploy it", keyword),
			"Inspect metrics and logs in CloudWatch",
		},
		Pricing: []types.PricingTier{
			{
				Tier:         "Free Tier",
				PricePerUnit: "$0.00",
				Unit:         "up to 100 jobs per month",
				Notes:        strPtr("Usage beyond the free tier is billed at the Standard rate."),
			},
			{
				Tier:         "Standard",
				PricePerUnit: "$0.08",
				Unit:         "job hour",
				Notes:        nil,
			},
			{
				Tier:         "Enterprise",
				PricePerUnit: "$0.05",
				Unit:         "job hour",
				Notes:        strPtr("Requires an annual commitment. Data transfer is billed separately."),
			},
		},
		SampleCLI: fmt.Sprintf(
			"aws elastic-%s-service create --name demo --replicas 3 --region us-east-1",
			cliSlug(keyword),
		),
		FAQs: []types.FAQ{
			{Q: "Does it run on premises?", A: "Yes. AWS Outposts and hybrid topologies are supported."},
			{Q: "What drives scaling?", A: "Policies based on CPU, memory, or custom metrics."},
			{Q: "How is it secured?", A: "It integrates with IAM, KMS, PrivateLink, and the other standard controls."},
		},
		Disclaimers: []string{
			"This service does not exist. It is generated as a parody of AWS documentation style.",
			"All prices and capabilities described here are fictional.",
		},
	}
}

// cliSlug folds a keyword into something that can sit inside a CLI command.
func cliSlug(keyword string) string {
	slug := strings.ToLower(strings.TrimSpace(keyword))
	return strings.Join(strings.Fields(slug), "-")
}

func strPtr(s string) *string {
	return &s
}
