package sqli

// Keyword and fingerprint table. One sorted array, binary-searched with a
// length-strict case-insensitive compare. Rows starting with '0' are attack
// fingerprints; everything else is SQL vocabulary. Keep sorted by byte value.

type keywordEntry struct {
	word  string
	ttype byte
}

var sqlKeywords = [...]keywordEntry{
	{"!!", typeOperator},
	{"!<", typeOperator},
	{"!=", typeOperator},
	{"!>", typeOperator},
	{"!~", typeOperator},
	{"%=", typeOperator},
	{"&&", typeLogicOperator},
	{"&=", typeOperator},
	{"*=", typeOperator},
	{"+=", typeOperator},
	{"-=", typeOperator},
	{"/=", typeOperator},
	{"0&(1", typeFingerprint},
	{"0&(1)", typeFingerprint},
	{"0&(N", typeFingerprint},
	{"0&(N)", typeFingerprint},
	{"0&(S", typeFingerprint},
	{"0&(S)", typeFingerprint},
	{"0&1", typeFingerprint},
	{"0&1;", typeFingerprint},
	{"0&1C", typeFingerprint},
	{"0&EK", typeFingerprint},
	{"0&F(", typeFingerprint},
	{"0&F(1", typeFingerprint},
	{"0&F(N", typeFingerprint},
	{"0&F(S", typeFingerprint},
	{"0&N", typeFingerprint},
	{"0&N;", typeFingerprint},
	{"0&NC", typeFingerprint},
	{"0&S", typeFingerprint},
	{"0&S;", typeFingerprint},
	{"0&SC", typeFingerprint},
	{"0&UE", typeFingerprint},
	{"0&V", typeFingerprint},
	{"0(&(", typeFingerprint},
	{"0((&((", typeFingerprint},
	{"0(1)&", typeFingerprint},
	{"0(N)&", typeFingerprint},
	{"0(S)&", typeFingerprint},
	{"0(U", typeFingerprint},
	{"0(U(", typeFingerprint},
	{"0(U;", typeFingerprint},
	{"0(UC", typeFingerprint},
	{"0(UE", typeFingerprint},
	{"0(UE(", typeFingerprint},
	{"0(UE(1", typeFingerprint},
	{"0(UE(E", typeFingerprint},
	{"0(UE(N", typeFingerprint},
	{"0(UE(S", typeFingerprint},
	{"0(UE1", typeFingerprint},
	{"0(UE1,", typeFingerprint},
	{"0(UE1;", typeFingerprint},
	{"0(UE1C", typeFingerprint},
	{"0(UE1K", typeFingerprint},
	{"0(UE;", typeFingerprint},
	{"0(UEC", typeFingerprint},
	{"0(UEF", typeFingerprint},
	{"0(UEF(", typeFingerprint},
	{"0(UEK", typeFingerprint},
	{"0(UEK1", typeFingerprint},
	{"0(UEK;", typeFingerprint},
	{"0(UEKC", typeFingerprint},
	{"0(UEKF", typeFingerprint},
	{"0(UEKN", typeFingerprint},
	{"0(UEKS", typeFingerprint},
	{"0(UEN", typeFingerprint},
	{"0(UEN1", typeFingerprint},
	{"0(UEN;", typeFingerprint},
	{"0(UENC", typeFingerprint},
	{"0(UENK", typeFingerprint},
	{"0(UENN", typeFingerprint},
	{"0(UENS", typeFingerprint},
	{"0(UEO", typeFingerprint},
	{"0(UEO1", typeFingerprint},
	{"0(UEOK", typeFingerprint},
	{"0(UEON", typeFingerprint},
	{"0(UEOS", typeFingerprint},
	{"0(UES", typeFingerprint},
	{"0(UES1", typeFingerprint},
	{"0(UESC", typeFingerprint},
	{"0(UESK", typeFingerprint},
	{"0(UEV", typeFingerprint},
	{"0(UEV1", typeFingerprint},
	{"0(UEVK", typeFingerprint},
	{"0(UK", typeFingerprint},
	{"0(UO", typeFingerprint},
	{"0(V)&", typeFingerprint},
	{"0)&(", typeFingerprint},
	{"0)&)(", typeFingerprint},
	{"0)(E", typeFingerprint},
	{"0)(E(", typeFingerprint},
	{"0)(E(1", typeFingerprint},
	{"0)(E(F", typeFingerprint},
	{"0)(E(N", typeFingerprint},
	{"0)(E(S", typeFingerprint},
	{"0)(E(V", typeFingerprint},
	{"0)(E1", typeFingerprint},
	{"0)(E1;", typeFingerprint},
	{"0)(E1C", typeFingerprint},
	{"0)(E1K", typeFingerprint},
	{"0)(EB", typeFingerprint},
	{"0)(EF", typeFingerprint},
	{"0)(EF(", typeFingerprint},
	{"0)(EF1", typeFingerprint},
	{"0)(EFN", typeFingerprint},
	{"0)(EFS", typeFingerprint},
	{"0)(EFV", typeFingerprint},
	{"0)(EK", typeFingerprint},
	{"0)(EK1", typeFingerprint},
	{"0)(EKF", typeFingerprint},
	{"0)(EKN", typeFingerprint},
	{"0)(EKS", typeFingerprint},
	{"0)(EKV", typeFingerprint},
	{"0)(EN", typeFingerprint},
	{"0)(EN;", typeFingerprint},
	{"0)(ENC", typeFingerprint},
	{"0)(ENK", typeFingerprint},
	{"0)(EO", typeFingerprint},
	{"0)(EO1", typeFingerprint},
	{"0)(EOK", typeFingerprint},
	{"0)(EON", typeFingerprint},
	{"0)(EOS", typeFingerprint},
	{"0)(ES", typeFingerprint},
	{"0)(ES;", typeFingerprint},
	{"0)(ESC", typeFingerprint},
	{"0)(ESK", typeFingerprint},
	{"0)(EV", typeFingerprint},
	{"0)(EVK", typeFingerprint},
	{"0)E", typeFingerprint},
	{"0)E(", typeFingerprint},
	{"0)E(1", typeFingerprint},
	{"0)E(1)", typeFingerprint},
	{"0)E(F", typeFingerprint},
	{"0)E(N", typeFingerprint},
	{"0)E(N)", typeFingerprint},
	{"0)E(S", typeFingerprint},
	{"0)E(S)", typeFingerprint},
	{"0)E(V", typeFingerprint},
	{"0)E1", typeFingerprint},
	{"0)E1;", typeFingerprint},
	{"0)E1C", typeFingerprint},
	{"0)E1K", typeFingerprint},
	{"0)EB", typeFingerprint},
	{"0)EF", typeFingerprint},
	{"0)EF(", typeFingerprint},
	{"0)EF(1", typeFingerprint},
	{"0)EF(N", typeFingerprint},
	{"0)EF(S", typeFingerprint},
	{"0)EF(V", typeFingerprint},
	{"0)EF1", typeFingerprint},
	{"0)EFN", typeFingerprint},
	{"0)EFS", typeFingerprint},
	{"0)EFV", typeFingerprint},
	{"0)EK", typeFingerprint},
	{"0)EK1", typeFingerprint},
	{"0)EK1K", typeFingerprint},
	{"0)EKF", typeFingerprint},
	{"0)EKN", typeFingerprint},
	{"0)EKNK", typeFingerprint},
	{"0)EKNN", typeFingerprint},
	{"0)EKS", typeFingerprint},
	{"0)EKUE", typeFingerprint},
	{"0)EKV", typeFingerprint},
	{"0)EN", typeFingerprint},
	{"0)EN;", typeFingerprint},
	{"0)ENC", typeFingerprint},
	{"0)ENK", typeFingerprint},
	{"0)ENKF", typeFingerprint},
	{"0)ENKN", typeFingerprint},
	{"0)EO", typeFingerprint},
	{"0)EO1", typeFingerprint},
	{"0)EOK", typeFingerprint},
	{"0)EOKN", typeFingerprint},
	{"0)EON", typeFingerprint},
	{"0)EOS", typeFingerprint},
	{"0)ES", typeFingerprint},
	{"0)ES;", typeFingerprint},
	{"0)ESC", typeFingerprint},
	{"0)ESK", typeFingerprint},
	{"0)EV", typeFingerprint},
	{"0)EVK", typeFingerprint},
	{"0)U", typeFingerprint},
	{"0)U(", typeFingerprint},
	{"0)U;", typeFingerprint},
	{"0)UC", typeFingerprint},
	{"0)UE", typeFingerprint},
	{"0)UE(", typeFingerprint},
	{"0)UE(1", typeFingerprint},
	{"0)UE(E", typeFingerprint},
	{"0)UE(N", typeFingerprint},
	{"0)UE(S", typeFingerprint},
	{"0)UE1", typeFingerprint},
	{"0)UE1,", typeFingerprint},
	{"0)UE1;", typeFingerprint},
	{"0)UE1C", typeFingerprint},
	{"0)UE1K", typeFingerprint},
	{"0)UE;", typeFingerprint},
	{"0)UEC", typeFingerprint},
	{"0)UEF", typeFingerprint},
	{"0)UEF(", typeFingerprint},
	{"0)UEK", typeFingerprint},
	{"0)UEK1", typeFingerprint},
	{"0)UEK;", typeFingerprint},
	{"0)UEKC", typeFingerprint},
	{"0)UEKF", typeFingerprint},
	{"0)UEKN", typeFingerprint},
	{"0)UEKS", typeFingerprint},
	{"0)UEN", typeFingerprint},
	{"0)UEN1", typeFingerprint},
	{"0)UEN;", typeFingerprint},
	{"0)UENC", typeFingerprint},
	{"0)UENK", typeFingerprint},
	{"0)UENN", typeFingerprint},
	{"0)UENS", typeFingerprint},
	{"0)UEO", typeFingerprint},
	{"0)UEO1", typeFingerprint},
	{"0)UEOK", typeFingerprint},
	{"0)UEON", typeFingerprint},
	{"0)UEOS", typeFingerprint},
	{"0)UES", typeFingerprint},
	{"0)UES1", typeFingerprint},
	{"0)UESC", typeFingerprint},
	{"0)UESK", typeFingerprint},
	{"0)UEV", typeFingerprint},
	{"0)UEV1", typeFingerprint},
	{"0)UEVK", typeFingerprint},
	{"0)UK", typeFingerprint},
	{"0)UO", typeFingerprint},
	{"01&1", typeFingerprint},
	{"01&1&1", typeFingerprint},
	{"01&1&N", typeFingerprint},
	{"01&1&S", typeFingerprint},
	{"01&1&V", typeFingerprint},
	{"01&1(1", typeFingerprint},
	{"01&1(N", typeFingerprint},
	{"01&1(S", typeFingerprint},
	{"01&1(V", typeFingerprint},
	{"01&1;", typeFingerprint},
	{"01&1C", typeFingerprint},
	{"01&1O1", typeFingerprint},
	{"01&1OF", typeFingerprint},
	{"01&1ON", typeFingerprint},
	{"01&1OS", typeFingerprint},
	{"01&1OV", typeFingerprint},
	{"01&1U", typeFingerprint},
	{"01&1UC", typeFingerprint},
	{"01&1UE", typeFingerprint},
	{"01&N", typeFingerprint},
	{"01&N&1", typeFingerprint},
	{"01&N&N", typeFingerprint},
	{"01&N&S", typeFingerprint},
	{"01&N&V", typeFingerprint},
	{"01&N(1", typeFingerprint},
	{"01&N(N", typeFingerprint},
	{"01&N(S", typeFingerprint},
	{"01&N(V", typeFingerprint},
	{"01&N;", typeFingerprint},
	{"01&NC", typeFingerprint},
	{"01&NO1", typeFingerprint},
	{"01&NOF", typeFingerprint},
	{"01&NON", typeFingerprint},
	{"01&NOS", typeFingerprint},
	{"01&NOV", typeFingerprint},
	{"01&NU", typeFingerprint},
	{"01&NUC", typeFingerprint},
	{"01&NUE", typeFingerprint},
	{"01&S", typeFingerprint},
	{"01&S&1", typeFingerprint},
	{"01&S&N", typeFingerprint},
	{"01&S&S", typeFingerprint},
	{"01&S&V", typeFingerprint},
	{"01&S(1", typeFingerprint},
	{"01&S(N", typeFingerprint},
	{"01&S(S", typeFingerprint},
	{"01&S(V", typeFingerprint},
	{"01&S;", typeFingerprint},
	{"01&SC", typeFingerprint},
	{"01&SO1", typeFingerprint},
	{"01&SOF", typeFingerprint},
	{"01&SON", typeFingerprint},
	{"01&SOS", typeFingerprint},
	{"01&SOV", typeFingerprint},
	{"01&SU", typeFingerprint},
	{"01&SUC", typeFingerprint},
	{"01&SUE", typeFingerprint},
	{"01&V", typeFingerprint},
	{"01&V&1", typeFingerprint},
	{"01&V&N", typeFingerprint},
	{"01&V&S", typeFingerprint},
	{"01&V&V", typeFingerprint},
	{"01&V(1", typeFingerprint},
	{"01&V(N", typeFingerprint},
	{"01&V(S", typeFingerprint},
	{"01&V(V", typeFingerprint},
	{"01&V;", typeFingerprint},
	{"01&VC", typeFingerprint},
	{"01&VO1", typeFingerprint},
	{"01&VOF", typeFingerprint},
	{"01&VON", typeFingerprint},
	{"01&VOS", typeFingerprint},
	{"01&VOV", typeFingerprint},
	{"01&VU", typeFingerprint},
	{"01&VUC", typeFingerprint},
	{"01&VUE", typeFingerprint},
	{"01(1(", typeFingerprint},
	{"01)&(", typeFingerprint},
	{"01)&(1", typeFingerprint},
	{"01)&1", typeFingerprint},
	{"01)1", typeFingerprint},
	{"01);", typeFingerprint},
	{"01)C", typeFingerprint},
	{"01)O(", typeFingerprint},
	{"01)O1", typeFingerprint},
	{"01)U", typeFingerprint},
	{"01)U(", typeFingerprint},
	{"01)U;", typeFingerprint},
	{"01)UC", typeFingerprint},
	{"01)UE", typeFingerprint},
	{"01)UE(", typeFingerprint},
	{"01)UE1", typeFingerprint},
	{"01)UE;", typeFingerprint},
	{"01)UEC", typeFingerprint},
	{"01)UEF", typeFingerprint},
	{"01)UEK", typeFingerprint},
	{"01)UEN", typeFingerprint},
	{"01)UEO", typeFingerprint},
	{"01)UES", typeFingerprint},
	{"01)UEV", typeFingerprint},
	{"01)UK", typeFingerprint},
	{"01)UO", typeFingerprint},
	{"01,(", typeFingerprint},
	{"01,1,", typeFingerprint},
	{"01,1C", typeFingerprint},
	{"01,N,", typeFingerprint},
	{"01,S", typeFingerprint},
	{"01.1C", typeFingerprint},
	{"01:1", typeFingerprint},
	{"01;", typeFingerprint},
	{"01;(", typeFingerprint},
	{"01;,", typeFingerprint},
	{"01;1", typeFingerprint},
	{"01;;", typeFingerprint},
	{"01;B", typeFingerprint},
	{"01;C", typeFingerprint},
	{"01;E", typeFingerprint},
	{"01;E(", typeFingerprint},
	{"01;E(1", typeFingerprint},
	{"01;E(F", typeFingerprint},
	{"01;E(N", typeFingerprint},
	{"01;E(S", typeFingerprint},
	{"01;E(V", typeFingerprint},
	{"01;E1", typeFingerprint},
	{"01;E1;", typeFingerprint},
	{"01;E1C", typeFingerprint},
	{"01;E1K", typeFingerprint},
	{"01;EB", typeFingerprint},
	{"01;EF", typeFingerprint},
	{"01;EF(", typeFingerprint},
	{"01;EF1", typeFingerprint},
	{"01;EFN", typeFingerprint},
	{"01;EFS", typeFingerprint},
	{"01;EFV", typeFingerprint},
	{"01;EK", typeFingerprint},
	{"01;EK1", typeFingerprint},
	{"01;EKF", typeFingerprint},
	{"01;EKN", typeFingerprint},
	{"01;EKS", typeFingerprint},
	{"01;EKV", typeFingerprint},
	{"01;EN", typeFingerprint},
	{"01;EN;", typeFingerprint},
	{"01;ENC", typeFingerprint},
	{"01;ENK", typeFingerprint},
	{"01;EO", typeFingerprint},
	{"01;EO1", typeFingerprint},
	{"01;EOK", typeFingerprint},
	{"01;EON", typeFingerprint},
	{"01;EOS", typeFingerprint},
	{"01;ES", typeFingerprint},
	{"01;ES;", typeFingerprint},
	{"01;ESC", typeFingerprint},
	{"01;ESK", typeFingerprint},
	{"01;EV", typeFingerprint},
	{"01;EVK", typeFingerprint},
	{"01;F", typeFingerprint},
	{"01;K", typeFingerprint},
	{"01;N", typeFingerprint},
	{"01;S", typeFingerprint},
	{"01;T", typeFingerprint},
	{"01;T(", typeFingerprint},
	{"01;T(1", typeFingerprint},
	{"01;T(N", typeFingerprint},
	{"01;T1", typeFingerprint},
	{"01;T1;", typeFingerprint},
	{"01;T;", typeFingerprint},
	{"01;TC", typeFingerprint},
	{"01;TF", typeFingerprint},
	{"01;TF(", typeFingerprint},
	{"01;TK", typeFingerprint},
	{"01;TKN", typeFingerprint},
	{"01;TN", typeFingerprint},
	{"01;TN1", typeFingerprint},
	{"01;TN;", typeFingerprint},
	{"01;TNC", typeFingerprint},
	{"01;TNK", typeFingerprint},
	{"01;TNN", typeFingerprint},
	{"01;TNS", typeFingerprint},
	{"01;TO", typeFingerprint},
	{"01;TS", typeFingerprint},
	{"01;TV", typeFingerprint},
	{"01;U", typeFingerprint},
	{"01AN", typeFingerprint},
	{"01ANC", typeFingerprint},
	{"01AT", typeFingerprint},
	{"01AT;", typeFingerprint},
	{"01ATC", typeFingerprint},
	{"01B1C", typeFingerprint},
	{"01BC", typeFingerprint},
	{"01C", typeFingerprint},
	{"01C;", typeFingerprint},
	{"01CC", typeFingerprint},
	{"01E", typeFingerprint},
	{"01E(", typeFingerprint},
	{"01E(1", typeFingerprint},
	{"01E(1)", typeFingerprint},
	{"01E(F", typeFingerprint},
	{"01E(N", typeFingerprint},
	{"01E(N)", typeFingerprint},
	{"01E(S", typeFingerprint},
	{"01E(S)", typeFingerprint},
	{"01E(V", typeFingerprint},
	{"01E1", typeFingerprint},
	{"01E1;", typeFingerprint},
	{"01E1C", typeFingerprint},
	{"01E1K", typeFingerprint},
	{"01EB", typeFingerprint},
	{"01EF", typeFingerprint},
	{"01EF(", typeFingerprint},
	{"01EF(1", typeFingerprint},
	{"01EF(N", typeFingerprint},
	{"01EF(S", typeFingerprint},
	{"01EF(V", typeFingerprint},
	{"01EF1", typeFingerprint},
	{"01EFN", typeFingerprint},
	{"01EFS", typeFingerprint},
	{"01EFV", typeFingerprint},
	{"01EK", typeFingerprint},
	{"01EK1", typeFingerprint},
	{"01EK1K", typeFingerprint},
	{"01EKF", typeFingerprint},
	{"01EKN", typeFingerprint},
	{"01EKNK", typeFingerprint},
	{"01EKNN", typeFingerprint},
	{"01EKS", typeFingerprint},
	{"01EKUE", typeFingerprint},
	{"01EKV", typeFingerprint},
	{"01EN", typeFingerprint},
	{"01EN;", typeFingerprint},
	{"01ENC", typeFingerprint},
	{"01ENK", typeFingerprint},
	{"01ENKF", typeFingerprint},
	{"01ENKN", typeFingerprint},
	{"01EO", typeFingerprint},
	{"01EO1", typeFingerprint},
	{"01EOK", typeFingerprint},
	{"01EOKN", typeFingerprint},
	{"01EON", typeFingerprint},
	{"01EOS", typeFingerprint},
	{"01ES", typeFingerprint},
	{"01ES;", typeFingerprint},
	{"01ESC", typeFingerprint},
	{"01ESK", typeFingerprint},
	{"01EV", typeFingerprint},
	{"01EVK", typeFingerprint},
	{"01F(", typeFingerprint},
	{"01F(1", typeFingerprint},
	{"01K", typeFingerprint},
	{"01K(", typeFingerprint},
	{"01K)", typeFingerprint},
	{"01K1", typeFingerprint},
	{"01K;", typeFingerprint},
	{"01KB", typeFingerprint},
	{"01KC", typeFingerprint},
	{"01KE", typeFingerprint},
	{"01KEK", typeFingerprint},
	{"01KF", typeFingerprint},
	{"01KK", typeFingerprint},
	{"01KN", typeFingerprint},
	{"01KNC", typeFingerprint},
	{"01KNK", typeFingerprint},
	{"01KS", typeFingerprint},
	{"01KUE", typeFingerprint},
	{"01KV", typeFingerprint},
	{"01O(1", typeFingerprint},
	{"01O1B", typeFingerprint},
	{"01OB", typeFingerprint},
	{"01T(", typeFingerprint},
	{"01T(1", typeFingerprint},
	{"01T(N", typeFingerprint},
	{"01T1", typeFingerprint},
	{"01T1;", typeFingerprint},
	{"01T;", typeFingerprint},
	{"01TC", typeFingerprint},
	{"01TF", typeFingerprint},
	{"01TF(", typeFingerprint},
	{"01TK", typeFingerprint},
	{"01TKN", typeFingerprint},
	{"01TN", typeFingerprint},
	{"01TN1", typeFingerprint},
	{"01TN1;", typeFingerprint},
	{"01TN1C", typeFingerprint},
	{"01TN;", typeFingerprint},
	{"01TNC", typeFingerprint},
	{"01TNK", typeFingerprint},
	{"01TNN", typeFingerprint},
	{"01TNS", typeFingerprint},
	{"01TNS;", typeFingerprint},
	{"01TNSC", typeFingerprint},
	{"01TO", typeFingerprint},
	{"01TS", typeFingerprint},
	{"01TV", typeFingerprint},
	{"01U", typeFingerprint},
	{"01U(", typeFingerprint},
	{"01U;", typeFingerprint},
	{"01UC", typeFingerprint},
	{"01UE", typeFingerprint},
	{"01UE(", typeFingerprint},
	{"01UE(1", typeFingerprint},
	{"01UE(E", typeFingerprint},
	{"01UE(N", typeFingerprint},
	{"01UE(S", typeFingerprint},
	{"01UE1", typeFingerprint},
	{"01UE1,", typeFingerprint},
	{"01UE1;", typeFingerprint},
	{"01UE1C", typeFingerprint},
	{"01UE1K", typeFingerprint},
	{"01UE;", typeFingerprint},
	{"01UEC", typeFingerprint},
	{"01UEF", typeFingerprint},
	{"01UEF(", typeFingerprint},
	{"01UEK", typeFingerprint},
	{"01UEK1", typeFingerprint},
	{"01UEK;", typeFingerprint},
	{"01UEKC", typeFingerprint},
	{"01UEKF", typeFingerprint},
	{"01UEKN", typeFingerprint},
	{"01UEKS", typeFingerprint},
	{"01UEN", typeFingerprint},
	{"01UEN1", typeFingerprint},
	{"01UEN;", typeFingerprint},
	{"01UENC", typeFingerprint},
	{"01UENK", typeFingerprint},
	{"01UENN", typeFingerprint},
	{"01UENS", typeFingerprint},
	{"01UEO", typeFingerprint},
	{"01UEO1", typeFingerprint},
	{"01UEOK", typeFingerprint},
	{"01UEON", typeFingerprint},
	{"01UEOS", typeFingerprint},
	{"01UES", typeFingerprint},
	{"01UES1", typeFingerprint},
	{"01UESC", typeFingerprint},
	{"01UESK", typeFingerprint},
	{"01UEV", typeFingerprint},
	{"01UEV1", typeFingerprint},
	{"01UEVK", typeFingerprint},
	{"01UK", typeFingerprint},
	{"01UO", typeFingerprint},
	{"01X", typeFingerprint},
	{"0;E", typeFingerprint},
	{"0;E(", typeFingerprint},
	{"0;E(1", typeFingerprint},
	{"0;E(1)", typeFingerprint},
	{"0;E(F", typeFingerprint},
	{"0;E(N", typeFingerprint},
	{"0;E(N)", typeFingerprint},
	{"0;E(S", typeFingerprint},
	{"0;E(S)", typeFingerprint},
	{"0;E(V", typeFingerprint},
	{"0;E1", typeFingerprint},
	{"0;E1;", typeFingerprint},
	{"0;E1C", typeFingerprint},
	{"0;E1K", typeFingerprint},
	{"0;EB", typeFingerprint},
	{"0;EF", typeFingerprint},
	{"0;EF(", typeFingerprint},
	{"0;EF(1", typeFingerprint},
	{"0;EF(N", typeFingerprint},
	{"0;EF(S", typeFingerprint},
	{"0;EF(V", typeFingerprint},
	{"0;EF1", typeFingerprint},
	{"0;EFN", typeFingerprint},
	{"0;EFS", typeFingerprint},
	{"0;EFV", typeFingerprint},
	{"0;EK", typeFingerprint},
	{"0;EK1", typeFingerprint},
	{"0;EK1K", typeFingerprint},
	{"0;EKF", typeFingerprint},
	{"0;EKN", typeFingerprint},
	{"0;EKNK", typeFingerprint},
	{"0;EKNN", typeFingerprint},
	{"0;EKS", typeFingerprint},
	{"0;EKUE", typeFingerprint},
	{"0;EKV", typeFingerprint},
	{"0;EN", typeFingerprint},
	{"0;EN;", typeFingerprint},
	{"0;ENC", typeFingerprint},
	{"0;ENK", typeFingerprint},
	{"0;ENKF", typeFingerprint},
	{"0;ENKN", typeFingerprint},
	{"0;EO", typeFingerprint},
	{"0;EO1", typeFingerprint},
	{"0;EOK", typeFingerprint},
	{"0;EOKN", typeFingerprint},
	{"0;EON", typeFingerprint},
	{"0;EOS", typeFingerprint},
	{"0;ES", typeFingerprint},
	{"0;ES;", typeFingerprint},
	{"0;ESC", typeFingerprint},
	{"0;ESK", typeFingerprint},
	{"0;EV", typeFingerprint},
	{"0;EVK", typeFingerprint},
	{"0;T", typeFingerprint},
	{"0;T(", typeFingerprint},
	{"0;T(1", typeFingerprint},
	{"0;T(N", typeFingerprint},
	{"0;T1", typeFingerprint},
	{"0;T1;", typeFingerprint},
	{"0;T;", typeFingerprint},
	{"0;TC", typeFingerprint},
	{"0;TF", typeFingerprint},
	{"0;TF(", typeFingerprint},
	{"0;TK", typeFingerprint},
	{"0;TKN", typeFingerprint},
	{"0;TN", typeFingerprint},
	{"0;TN1", typeFingerprint},
	{"0;TN1;", typeFingerprint},
	{"0;TN1C", typeFingerprint},
	{"0;TN;", typeFingerprint},
	{"0;TNC", typeFingerprint},
	{"0;TNK", typeFingerprint},
	{"0;TNN", typeFingerprint},
	{"0;TNS", typeFingerprint},
	{"0;TNS;", typeFingerprint},
	{"0;TNSC", typeFingerprint},
	{"0;TO", typeFingerprint},
	{"0;TS", typeFingerprint},
	{"0;TV", typeFingerprint},
	{"0E", typeFingerprint},
	{"0E(", typeFingerprint},
	{"0E(1", typeFingerprint},
	{"0E(1)", typeFingerprint},
	{"0E(F", typeFingerprint},
	{"0E(N", typeFingerprint},
	{"0E(N)", typeFingerprint},
	{"0E(S", typeFingerprint},
	{"0E(S)", typeFingerprint},
	{"0E(V", typeFingerprint},
	{"0E1", typeFingerprint},
	{"0E1;", typeFingerprint},
	{"0E1C", typeFingerprint},
	{"0E1K", typeFingerprint},
	{"0EB", typeFingerprint},
	{"0EF", typeFingerprint},
	{"0EF(", typeFingerprint},
	{"0EF(1", typeFingerprint},
	{"0EF(N", typeFingerprint},
	{"0EF(S", typeFingerprint},
	{"0EF(V", typeFingerprint},
	{"0EF1", typeFingerprint},
	{"0EFN", typeFingerprint},
	{"0EFS", typeFingerprint},
	{"0EFV", typeFingerprint},
	{"0EK", typeFingerprint},
	{"0EK1", typeFingerprint},
	{"0EK1K", typeFingerprint},
	{"0EKF", typeFingerprint},
	{"0EKN", typeFingerprint},
	{"0EKNK", typeFingerprint},
	{"0EKNN", typeFingerprint},
	{"0EKS", typeFingerprint},
	{"0EKUE", typeFingerprint},
	{"0EKV", typeFingerprint},
	{"0EN", typeFingerprint},
	{"0EN;", typeFingerprint},
	{"0ENC", typeFingerprint},
	{"0ENK", typeFingerprint},
	{"0ENKF", typeFingerprint},
	{"0ENKN", typeFingerprint},
	{"0EO", typeFingerprint},
	{"0EO1", typeFingerprint},
	{"0EOK", typeFingerprint},
	{"0EOKN", typeFingerprint},
	{"0EON", typeFingerprint},
	{"0EOS", typeFingerprint},
	{"0ES", typeFingerprint},
	{"0ES;", typeFingerprint},
	{"0ESC", typeFingerprint},
	{"0ESK", typeFingerprint},
	{"0EV", typeFingerprint},
	{"0EVK", typeFingerprint},
	{"0F((1", typeFingerprint},
	{"0F()", typeFingerprint},
	{"0F(1)", typeFingerprint},
	{"0F(1,", typeFingerprint},
	{"0F(1;", typeFingerprint},
	{"0F(1C", typeFingerprint},
	{"0F(1O", typeFingerprint},
	{"0F(E1", typeFingerprint},
	{"0F(EK", typeFingerprint},
	{"0F(EN", typeFingerprint},
	{"0F(ES", typeFingerprint},
	{"0F(EV", typeFingerprint},
	{"0F(F(", typeFingerprint},
	{"0F(N)", typeFingerprint},
	{"0F(N,", typeFingerprint},
	{"0F(NO", typeFingerprint},
	{"0F(S)", typeFingerprint},
	{"0F(S,", typeFingerprint},
	{"0F(SO", typeFingerprint},
	{"0F(V)", typeFingerprint},
	{"0N&1", typeFingerprint},
	{"0N&1&1", typeFingerprint},
	{"0N&1&N", typeFingerprint},
	{"0N&1&S", typeFingerprint},
	{"0N&1&V", typeFingerprint},
	{"0N&1(1", typeFingerprint},
	{"0N&1(N", typeFingerprint},
	{"0N&1(S", typeFingerprint},
	{"0N&1(V", typeFingerprint},
	{"0N&1;", typeFingerprint},
	{"0N&1C", typeFingerprint},
	{"0N&1O1", typeFingerprint},
	{"0N&1OF", typeFingerprint},
	{"0N&1ON", typeFingerprint},
	{"0N&1OS", typeFingerprint},
	{"0N&1OV", typeFingerprint},
	{"0N&1U", typeFingerprint},
	{"0N&1UC", typeFingerprint},
	{"0N&1UE", typeFingerprint},
	{"0N&N", typeFingerprint},
	{"0N&N&1", typeFingerprint},
	{"0N&N&N", typeFingerprint},
	{"0N&N&S", typeFingerprint},
	{"0N&N&V", typeFingerprint},
	{"0N&N(1", typeFingerprint},
	{"0N&N(N", typeFingerprint},
	{"0N&N(S", typeFingerprint},
	{"0N&N(V", typeFingerprint},
	{"0N&N;", typeFingerprint},
	{"0N&NC", typeFingerprint},
	{"0N&NO1", typeFingerprint},
	{"0N&NOF", typeFingerprint},
	{"0N&NON", typeFingerprint},
	{"0N&NOS", typeFingerprint},
	{"0N&NOV", typeFingerprint},
	{"0N&NU", typeFingerprint},
	{"0N&NUC", typeFingerprint},
	{"0N&NUE", typeFingerprint},
	{"0N&S", typeFingerprint},
	{"0N&S&1", typeFingerprint},
	{"0N&S&N", typeFingerprint},
	{"0N&S&S", typeFingerprint},
	{"0N&S&V", typeFingerprint},
	{"0N&S(1", typeFingerprint},
	{"0N&S(N", typeFingerprint},
	{"0N&S(S", typeFingerprint},
	{"0N&S(V", typeFingerprint},
	{"0N&S;", typeFingerprint},
	{"0N&SC", typeFingerprint},
	{"0N&SO1", typeFingerprint},
	{"0N&SOF", typeFingerprint},
	{"0N&SON", typeFingerprint},
	{"0N&SOS", typeFingerprint},
	{"0N&SOV", typeFingerprint},
	{"0N&SU", typeFingerprint},
	{"0N&SUC", typeFingerprint},
	{"0N&SUE", typeFingerprint},
	{"0N&V", typeFingerprint},
	{"0N&V&1", typeFingerprint},
	{"0N&V&N", typeFingerprint},
	{"0N&V&S", typeFingerprint},
	{"0N&V&V", typeFingerprint},
	{"0N&V(1", typeFingerprint},
	{"0N&V(N", typeFingerprint},
	{"0N&V(S", typeFingerprint},
	{"0N&V(V", typeFingerprint},
	{"0N&V;", typeFingerprint},
	{"0N&VC", typeFingerprint},
	{"0N&VO1", typeFingerprint},
	{"0N&VOF", typeFingerprint},
	{"0N&VON", typeFingerprint},
	{"0N&VOS", typeFingerprint},
	{"0N&VOV", typeFingerprint},
	{"0N&VU", typeFingerprint},
	{"0N&VUC", typeFingerprint},
	{"0N&VUE", typeFingerprint},
	{"0N(N(", typeFingerprint},
	{"0N)&(", typeFingerprint},
	{"0N)&(N", typeFingerprint},
	{"0N)&N", typeFingerprint},
	{"0N);", typeFingerprint},
	{"0N)C", typeFingerprint},
	{"0N)N", typeFingerprint},
	{"0N)O(", typeFingerprint},
	{"0N)ON", typeFingerprint},
	{"0N)U", typeFingerprint},
	{"0N)U(", typeFingerprint},
	{"0N)U;", typeFingerprint},
	{"0N)UC", typeFingerprint},
	{"0N)UE", typeFingerprint},
	{"0N)UE(", typeFingerprint},
	{"0N)UE1", typeFingerprint},
	{"0N)UE;", typeFingerprint},
	{"0N)UEC", typeFingerprint},
	{"0N)UEF", typeFingerprint},
	{"0N)UEK", typeFingerprint},
	{"0N)UEN", typeFingerprint},
	{"0N)UEO", typeFingerprint},
	{"0N)UES", typeFingerprint},
	{"0N)UEV", typeFingerprint},
	{"0N)UK", typeFingerprint},
	{"0N)UO", typeFingerprint},
	{"0N,(", typeFingerprint},
	{"0N,1,", typeFingerprint},
	{"0N,N,", typeFingerprint},
	{"0N,NC", typeFingerprint},
	{"0N,S", typeFingerprint},
	{"0N.NC", typeFingerprint},
	{"0N:N", typeFingerprint},
	{"0N;", typeFingerprint},
	{"0N;(", typeFingerprint},
	{"0N;,", typeFingerprint},
	{"0N;1", typeFingerprint},
	{"0N;;", typeFingerprint},
	{"0N;B", typeFingerprint},
	{"0N;C", typeFingerprint},
	{"0N;E", typeFingerprint},
	{"0N;E(", typeFingerprint},
	{"0N;E(1", typeFingerprint},
	{"0N;E(F", typeFingerprint},
	{"0N;E(N", typeFingerprint},
	{"0N;E(S", typeFingerprint},
	{"0N;E(V", typeFingerprint},
	{"0N;E1", typeFingerprint},
	{"0N;E1;", typeFingerprint},
	{"0N;E1C", typeFingerprint},
	{"0N;E1K", typeFingerprint},
	{"0N;EB", typeFingerprint},
	{"0N;EF", typeFingerprint},
	{"0N;EF(", typeFingerprint},
	{"0N;EF1", typeFingerprint},
	{"0N;EFN", typeFingerprint},
	{"0N;EFS", typeFingerprint},
	{"0N;EFV", typeFingerprint},
	{"0N;EK", typeFingerprint},
	{"0N;EK1", typeFingerprint},
	{"0N;EKF", typeFingerprint},
	{"0N;EKN", typeFingerprint},
	{"0N;EKS", typeFingerprint},
	{"0N;EKV", typeFingerprint},
	{"0N;EN", typeFingerprint},
	{"0N;EN;", typeFingerprint},
	{"0N;ENC", typeFingerprint},
	{"0N;ENK", typeFingerprint},
	{"0N;EO", typeFingerprint},
	{"0N;EO1", typeFingerprint},
	{"0N;EOK", typeFingerprint},
	{"0N;EON", typeFingerprint},
	{"0N;EOS", typeFingerprint},
	{"0N;ES", typeFingerprint},
	{"0N;ES;", typeFingerprint},
	{"0N;ESC", typeFingerprint},
	{"0N;ESK", typeFingerprint},
	{"0N;EV", typeFingerprint},
	{"0N;EVK", typeFingerprint},
	{"0N;F", typeFingerprint},
	{"0N;K", typeFingerprint},
	{"0N;N", typeFingerprint},
	{"0N;S", typeFingerprint},
	{"0N;T", typeFingerprint},
	{"0N;T(", typeFingerprint},
	{"0N;T(1", typeFingerprint},
	{"0N;T(N", typeFingerprint},
	{"0N;T1", typeFingerprint},
	{"0N;T1;", typeFingerprint},
	{"0N;T;", typeFingerprint},
	{"0N;TC", typeFingerprint},
	{"0N;TF", typeFingerprint},
	{"0N;TF(", typeFingerprint},
	{"0N;TK", typeFingerprint},
	{"0N;TKN", typeFingerprint},
	{"0N;TN", typeFingerprint},
	{"0N;TN1", typeFingerprint},
	{"0N;TN;", typeFingerprint},
	{"0N;TNC", typeFingerprint},
	{"0N;TNK", typeFingerprint},
	{"0N;TNN", typeFingerprint},
	{"0N;TNS", typeFingerprint},
	{"0N;TO", typeFingerprint},
	{"0N;TS", typeFingerprint},
	{"0N;TV", typeFingerprint},
	{"0N;U", typeFingerprint},
	{"0NAN", typeFingerprint},
	{"0NANC", typeFingerprint},
	{"0NAT", typeFingerprint},
	{"0NAT;", typeFingerprint},
	{"0NATC", typeFingerprint},
	{"0NB1C", typeFingerprint},
	{"0NBC", typeFingerprint},
	{"0NC", typeFingerprint},
	{"0NC;", typeFingerprint},
	{"0NCC", typeFingerprint},
	{"0NE", typeFingerprint},
	{"0NE(", typeFingerprint},
	{"0NE(1", typeFingerprint},
	{"0NE(1)", typeFingerprint},
	{"0NE(F", typeFingerprint},
	{"0NE(N", typeFingerprint},
	{"0NE(N)", typeFingerprint},
	{"0NE(S", typeFingerprint},
	{"0NE(S)", typeFingerprint},
	{"0NE(V", typeFingerprint},
	{"0NE1", typeFingerprint},
	{"0NE1;", typeFingerprint},
	{"0NE1C", typeFingerprint},
	{"0NE1K", typeFingerprint},
	{"0NEB", typeFingerprint},
	{"0NEF", typeFingerprint},
	{"0NEF(", typeFingerprint},
	{"0NEF(1", typeFingerprint},
	{"0NEF(N", typeFingerprint},
	{"0NEF(S", typeFingerprint},
	{"0NEF(V", typeFingerprint},
	{"0NEF1", typeFingerprint},
	{"0NEFN", typeFingerprint},
	{"0NEFS", typeFingerprint},
	{"0NEFV", typeFingerprint},
	{"0NEK", typeFingerprint},
	{"0NEK1", typeFingerprint},
	{"0NEK1K", typeFingerprint},
	{"0NEKF", typeFingerprint},
	{"0NEKN", typeFingerprint},
	{"0NEKNK", typeFingerprint},
	{"0NEKNN", typeFingerprint},
	{"0NEKS", typeFingerprint},
	{"0NEKUE", typeFingerprint},
	{"0NEKV", typeFingerprint},
	{"0NEN", typeFingerprint},
	{"0NEN;", typeFingerprint},
	{"0NENC", typeFingerprint},
	{"0NENK", typeFingerprint},
	{"0NENKF", typeFingerprint},
	{"0NENKN", typeFingerprint},
	{"0NEO", typeFingerprint},
	{"0NEO1", typeFingerprint},
	{"0NEOK", typeFingerprint},
	{"0NEOKN", typeFingerprint},
	{"0NEON", typeFingerprint},
	{"0NEOS", typeFingerprint},
	{"0NES", typeFingerprint},
	{"0NES;", typeFingerprint},
	{"0NESC", typeFingerprint},
	{"0NESK", typeFingerprint},
	{"0NEV", typeFingerprint},
	{"0NEVK", typeFingerprint},
	{"0NF(", typeFingerprint},
	{"0NF(1", typeFingerprint},
	{"0NK", typeFingerprint},
	{"0NK(", typeFingerprint},
	{"0NK)", typeFingerprint},
	{"0NK1", typeFingerprint},
	{"0NK;", typeFingerprint},
	{"0NKB", typeFingerprint},
	{"0NKC", typeFingerprint},
	{"0NKE", typeFingerprint},
	{"0NKEK", typeFingerprint},
	{"0NKF", typeFingerprint},
	{"0NKK", typeFingerprint},
	{"0NKN", typeFingerprint},
	{"0NKNC", typeFingerprint},
	{"0NKNK", typeFingerprint},
	{"0NKS", typeFingerprint},
	{"0NKUE", typeFingerprint},
	{"0NKV", typeFingerprint},
	{"0NO(N", typeFingerprint},
	{"0NOB", typeFingerprint},
	{"0NT(", typeFingerprint},
	{"0NT(1", typeFingerprint},
	{"0NT(N", typeFingerprint},
	{"0NT1", typeFingerprint},
	{"0NT1;", typeFingerprint},
	{"0NT;", typeFingerprint},
	{"0NTC", typeFingerprint},
	{"0NTF", typeFingerprint},
	{"0NTF(", typeFingerprint},
	{"0NTK", typeFingerprint},
	{"0NTKN", typeFingerprint},
	{"0NTN", typeFingerprint},
	{"0NTN1", typeFingerprint},
	{"0NTN1;", typeFingerprint},
	{"0NTN1C", typeFingerprint},
	{"0NTN;", typeFingerprint},
	{"0NTNC", typeFingerprint},
	{"0NTNK", typeFingerprint},
	{"0NTNN", typeFingerprint},
	{"0NTNS", typeFingerprint},
	{"0NTNS;", typeFingerprint},
	{"0NTNSC", typeFingerprint},
	{"0NTO", typeFingerprint},
	{"0NTS", typeFingerprint},
	{"0NTV", typeFingerprint},
	{"0NU", typeFingerprint},
	{"0NU(", typeFingerprint},
	{"0NU;", typeFingerprint},
	{"0NUC", typeFingerprint},
	{"0NUE", typeFingerprint},
	{"0NUE(", typeFingerprint},
	{"0NUE(1", typeFingerprint},
	{"0NUE(E", typeFingerprint},
	{"0NUE(N", typeFingerprint},
	{"0NUE(S", typeFingerprint},
	{"0NUE1", typeFingerprint},
	{"0NUE1,", typeFingerprint},
	{"0NUE1;", typeFingerprint},
	{"0NUE1C", typeFingerprint},
	{"0NUE1K", typeFingerprint},
	{"0NUE;", typeFingerprint},
	{"0NUEC", typeFingerprint},
	{"0NUEF", typeFingerprint},
	{"0NUEF(", typeFingerprint},
	{"0NUEK", typeFingerprint},
	{"0NUEK1", typeFingerprint},
	{"0NUEK;", typeFingerprint},
	{"0NUEKC", typeFingerprint},
	{"0NUEKF", typeFingerprint},
	{"0NUEKN", typeFingerprint},
	{"0NUEKS", typeFingerprint},
	{"0NUEN", typeFingerprint},
	{"0NUEN1", typeFingerprint},
	{"0NUEN;", typeFingerprint},
	{"0NUENC", typeFingerprint},
	{"0NUENK", typeFingerprint},
	{"0NUENN", typeFingerprint},
	{"0NUENS", typeFingerprint},
	{"0NUEO", typeFingerprint},
	{"0NUEO1", typeFingerprint},
	{"0NUEOK", typeFingerprint},
	{"0NUEON", typeFingerprint},
	{"0NUEOS", typeFingerprint},
	{"0NUES", typeFingerprint},
	{"0NUES1", typeFingerprint},
	{"0NUESC", typeFingerprint},
	{"0NUESK", typeFingerprint},
	{"0NUEV", typeFingerprint},
	{"0NUEV1", typeFingerprint},
	{"0NUEVK", typeFingerprint},
	{"0NUK", typeFingerprint},
	{"0NUO", typeFingerprint},
	{"0NX", typeFingerprint},
	{"0S", typeFingerprint},
	{"0S&", typeFingerprint},
	{"0S&(1", typeFingerprint},
	{"0S&(N", typeFingerprint},
	{"0S&(S", typeFingerprint},
	{"0S&1", typeFingerprint},
	{"0S&1&", typeFingerprint},
	{"0S&1&1", typeFingerprint},
	{"0S&1&N", typeFingerprint},
	{"0S&1&S", typeFingerprint},
	{"0S&1&V", typeFingerprint},
	{"0S&1(1", typeFingerprint},
	{"0S&1(N", typeFingerprint},
	{"0S&1(S", typeFingerprint},
	{"0S&1(V", typeFingerprint},
	{"0S&1;", typeFingerprint},
	{"0S&1C", typeFingerprint},
	{"0S&1O", typeFingerprint},
	{"0S&1O1", typeFingerprint},
	{"0S&1OF", typeFingerprint},
	{"0S&1ON", typeFingerprint},
	{"0S&1OS", typeFingerprint},
	{"0S&1OV", typeFingerprint},
	{"0S&1U", typeFingerprint},
	{"0S&1UC", typeFingerprint},
	{"0S&1UE", typeFingerprint},
	{"0S&F(", typeFingerprint},
	{"0S&F(1", typeFingerprint},
	{"0S&F(N", typeFingerprint},
	{"0S&F(S", typeFingerprint},
	{"0S&F(V", typeFingerprint},
	{"0S&N", typeFingerprint},
	{"0S&N&", typeFingerprint},
	{"0S&N&1", typeFingerprint},
	{"0S&N&N", typeFingerprint},
	{"0S&N&S", typeFingerprint},
	{"0S&N&V", typeFingerprint},
	{"0S&N(1", typeFingerprint},
	{"0S&N(N", typeFingerprint},
	{"0S&N(S", typeFingerprint},
	{"0S&N(V", typeFingerprint},
	{"0S&N;", typeFingerprint},
	{"0S&NC", typeFingerprint},
	{"0S&NO", typeFingerprint},
	{"0S&NO1", typeFingerprint},
	{"0S&NOF", typeFingerprint},
	{"0S&NON", typeFingerprint},
	{"0S&NOS", typeFingerprint},
	{"0S&NOV", typeFingerprint},
	{"0S&NU", typeFingerprint},
	{"0S&NUC", typeFingerprint},
	{"0S&NUE", typeFingerprint},
	{"0S&S", typeFingerprint},
	{"0S&S&", typeFingerprint},
	{"0S&S&1", typeFingerprint},
	{"0S&S&N", typeFingerprint},
	{"0S&S&S", typeFingerprint},
	{"0S&S&V", typeFingerprint},
	{"0S&S(1", typeFingerprint},
	{"0S&S(N", typeFingerprint},
	{"0S&S(S", typeFingerprint},
	{"0S&S(V", typeFingerprint},
	{"0S&S;", typeFingerprint},
	{"0S&SC", typeFingerprint},
	{"0S&SO", typeFingerprint},
	{"0S&SO1", typeFingerprint},
	{"0S&SOF", typeFingerprint},
	{"0S&SON", typeFingerprint},
	{"0S&SOS", typeFingerprint},
	{"0S&SOV", typeFingerprint},
	{"0S&SU", typeFingerprint},
	{"0S&SUC", typeFingerprint},
	{"0S&SUE", typeFingerprint},
	{"0S&V", typeFingerprint},
	{"0S&V&", typeFingerprint},
	{"0S&V&1", typeFingerprint},
	{"0S&V&N", typeFingerprint},
	{"0S&V&S", typeFingerprint},
	{"0S&V&V", typeFingerprint},
	{"0S&V(1", typeFingerprint},
	{"0S&V(N", typeFingerprint},
	{"0S&V(S", typeFingerprint},
	{"0S&V(V", typeFingerprint},
	{"0S&V;", typeFingerprint},
	{"0S&VC", typeFingerprint},
	{"0S&VO", typeFingerprint},
	{"0S&VO1", typeFingerprint},
	{"0S&VOF", typeFingerprint},
	{"0S&VON", typeFingerprint},
	{"0S&VOS", typeFingerprint},
	{"0S&VOV", typeFingerprint},
	{"0S&VU", typeFingerprint},
	{"0S&VUC", typeFingerprint},
	{"0S&VUE", typeFingerprint},
	{"0S(", typeFingerprint},
	{"0S)", typeFingerprint},
	{"0S)&(", typeFingerprint},
	{"0S)&(S", typeFingerprint},
	{"0S)&S", typeFingerprint},
	{"0S)U", typeFingerprint},
	{"0S)U(", typeFingerprint},
	{"0S)U;", typeFingerprint},
	{"0S)UC", typeFingerprint},
	{"0S)UE", typeFingerprint},
	{"0S)UE(", typeFingerprint},
	{"0S)UE1", typeFingerprint},
	{"0S)UE;", typeFingerprint},
	{"0S)UEC", typeFingerprint},
	{"0S)UEF", typeFingerprint},
	{"0S)UEK", typeFingerprint},
	{"0S)UEN", typeFingerprint},
	{"0S)UEO", typeFingerprint},
	{"0S)UES", typeFingerprint},
	{"0S)UEV", typeFingerprint},
	{"0S)UK", typeFingerprint},
	{"0S)UO", typeFingerprint},
	{"0S,1", typeFingerprint},
	{"0S,N", typeFingerprint},
	{"0S,S", typeFingerprint},
	{"0S.N", typeFingerprint},
	{"0S;", typeFingerprint},
	{"0S;(", typeFingerprint},
	{"0S;,", typeFingerprint},
	{"0S;1", typeFingerprint},
	{"0S;;", typeFingerprint},
	{"0S;B", typeFingerprint},
	{"0S;C", typeFingerprint},
	{"0S;E", typeFingerprint},
	{"0S;E(", typeFingerprint},
	{"0S;E(1", typeFingerprint},
	{"0S;E(F", typeFingerprint},
	{"0S;E(N", typeFingerprint},
	{"0S;E(S", typeFingerprint},
	{"0S;E(V", typeFingerprint},
	{"0S;E1", typeFingerprint},
	{"0S;E1;", typeFingerprint},
	{"0S;E1C", typeFingerprint},
	{"0S;E1K", typeFingerprint},
	{"0S;EB", typeFingerprint},
	{"0S;EF", typeFingerprint},
	{"0S;EF(", typeFingerprint},
	{"0S;EF1", typeFingerprint},
	{"0S;EFN", typeFingerprint},
	{"0S;EFS", typeFingerprint},
	{"0S;EFV", typeFingerprint},
	{"0S;EK", typeFingerprint},
	{"0S;EK1", typeFingerprint},
	{"0S;EKF", typeFingerprint},
	{"0S;EKN", typeFingerprint},
	{"0S;EKS", typeFingerprint},
	{"0S;EKV", typeFingerprint},
	{"0S;EN", typeFingerprint},
	{"0S;EN;", typeFingerprint},
	{"0S;ENC", typeFingerprint},
	{"0S;ENK", typeFingerprint},
	{"0S;EO", typeFingerprint},
	{"0S;EO1", typeFingerprint},
	{"0S;EOK", typeFingerprint},
	{"0S;EON", typeFingerprint},
	{"0S;EOS", typeFingerprint},
	{"0S;ES", typeFingerprint},
	{"0S;ES;", typeFingerprint},
	{"0S;ESC", typeFingerprint},
	{"0S;ESK", typeFingerprint},
	{"0S;EV", typeFingerprint},
	{"0S;EVK", typeFingerprint},
	{"0S;F", typeFingerprint},
	{"0S;K", typeFingerprint},
	{"0S;N", typeFingerprint},
	{"0S;S", typeFingerprint},
	{"0S;T", typeFingerprint},
	{"0S;T(", typeFingerprint},
	{"0S;T(1", typeFingerprint},
	{"0S;T(N", typeFingerprint},
	{"0S;T1", typeFingerprint},
	{"0S;T1;", typeFingerprint},
	{"0S;T;", typeFingerprint},
	{"0S;TC", typeFingerprint},
	{"0S;TF", typeFingerprint},
	{"0S;TF(", typeFingerprint},
	{"0S;TK", typeFingerprint},
	{"0S;TKN", typeFingerprint},
	{"0S;TN", typeFingerprint},
	{"0S;TN1", typeFingerprint},
	{"0S;TN;", typeFingerprint},
	{"0S;TNC", typeFingerprint},
	{"0S;TNK", typeFingerprint},
	{"0S;TNN", typeFingerprint},
	{"0S;TNS", typeFingerprint},
	{"0S;TO", typeFingerprint},
	{"0S;TS", typeFingerprint},
	{"0S;TV", typeFingerprint},
	{"0S;U", typeFingerprint},
	{"0SA", typeFingerprint},
	{"0SAN", typeFingerprint},
	{"0SANC", typeFingerprint},
	{"0SAT", typeFingerprint},
	{"0SAT;", typeFingerprint},
	{"0SATC", typeFingerprint},
	{"0SB", typeFingerprint},
	{"0SB1", typeFingerprint},
	{"0SB1;", typeFingerprint},
	{"0SB1C", typeFingerprint},
	{"0SBC", typeFingerprint},
	{"0SBN", typeFingerprint},
	{"0SBNC", typeFingerprint},
	{"0SBU", typeFingerprint},
	{"0SBUE", typeFingerprint},
	{"0SC", typeFingerprint},
	{"0SC;", typeFingerprint},
	{"0SCC", typeFingerprint},
	{"0SE", typeFingerprint},
	{"0SE(", typeFingerprint},
	{"0SE(1", typeFingerprint},
	{"0SE(1)", typeFingerprint},
	{"0SE(F", typeFingerprint},
	{"0SE(N", typeFingerprint},
	{"0SE(N)", typeFingerprint},
	{"0SE(S", typeFingerprint},
	{"0SE(S)", typeFingerprint},
	{"0SE(V", typeFingerprint},
	{"0SE1", typeFingerprint},
	{"0SE1;", typeFingerprint},
	{"0SE1C", typeFingerprint},
	{"0SE1K", typeFingerprint},
	{"0SEB", typeFingerprint},
	{"0SEC", typeFingerprint},
	{"0SEF", typeFingerprint},
	{"0SEF(", typeFingerprint},
	{"0SEF(1", typeFingerprint},
	{"0SEF(N", typeFingerprint},
	{"0SEF(S", typeFingerprint},
	{"0SEF(V", typeFingerprint},
	{"0SEF1", typeFingerprint},
	{"0SEFN", typeFingerprint},
	{"0SEFS", typeFingerprint},
	{"0SEFV", typeFingerprint},
	{"0SEK", typeFingerprint},
	{"0SEK1", typeFingerprint},
	{"0SEK1K", typeFingerprint},
	{"0SEKF", typeFingerprint},
	{"0SEKN", typeFingerprint},
	{"0SEKNK", typeFingerprint},
	{"0SEKNN", typeFingerprint},
	{"0SEKS", typeFingerprint},
	{"0SEKUE", typeFingerprint},
	{"0SEKV", typeFingerprint},
	{"0SEN", typeFingerprint},
	{"0SEN;", typeFingerprint},
	{"0SENC", typeFingerprint},
	{"0SENK", typeFingerprint},
	{"0SENKF", typeFingerprint},
	{"0SENKN", typeFingerprint},
	{"0SEO", typeFingerprint},
	{"0SEO1", typeFingerprint},
	{"0SEOK", typeFingerprint},
	{"0SEOKN", typeFingerprint},
	{"0SEON", typeFingerprint},
	{"0SEOS", typeFingerprint},
	{"0SES", typeFingerprint},
	{"0SES;", typeFingerprint},
	{"0SESC", typeFingerprint},
	{"0SESK", typeFingerprint},
	{"0SEV", typeFingerprint},
	{"0SEVK", typeFingerprint},
	{"0SF(", typeFingerprint},
	{"0SF(1", typeFingerprint},
	{"0SF(N", typeFingerprint},
	{"0SF(S", typeFingerprint},
	{"0SK", typeFingerprint},
	{"0SK(", typeFingerprint},
	{"0SK)", typeFingerprint},
	{"0SK1", typeFingerprint},
	{"0SK1;", typeFingerprint},
	{"0SK1C", typeFingerprint},
	{"0SK;", typeFingerprint},
	{"0SKB", typeFingerprint},
	{"0SKC", typeFingerprint},
	{"0SKE", typeFingerprint},
	{"0SKEK", typeFingerprint},
	{"0SKF", typeFingerprint},
	{"0SKK", typeFingerprint},
	{"0SKN", typeFingerprint},
	{"0SKNC", typeFingerprint},
	{"0SKNK", typeFingerprint},
	{"0SKS", typeFingerprint},
	{"0SKS;", typeFingerprint},
	{"0SKSC", typeFingerprint},
	{"0SKUE", typeFingerprint},
	{"0SKV", typeFingerprint},
	{"0SKVC", typeFingerprint},
	{"0SO", typeFingerprint},
	{"0SO(1", typeFingerprint},
	{"0SO(N", typeFingerprint},
	{"0SO(S", typeFingerprint},
	{"0SO1&1", typeFingerprint},
	{"0SO1&N", typeFingerprint},
	{"0SO1&S", typeFingerprint},
	{"0SO1&V", typeFingerprint},
	{"0SO1(1", typeFingerprint},
	{"0SO1(N", typeFingerprint},
	{"0SO1(S", typeFingerprint},
	{"0SO1(V", typeFingerprint},
	{"0SO1;", typeFingerprint},
	{"0SO1C", typeFingerprint},
	{"0SO1O", typeFingerprint},
	{"0SO1O1", typeFingerprint},
	{"0SO1OF", typeFingerprint},
	{"0SO1ON", typeFingerprint},
	{"0SO1OS", typeFingerprint},
	{"0SO1OV", typeFingerprint},
	{"0SO1U", typeFingerprint},
	{"0SO1UC", typeFingerprint},
	{"0SO1UE", typeFingerprint},
	{"0SOF(", typeFingerprint},
	{"0SOF(1", typeFingerprint},
	{"0SOF(N", typeFingerprint},
	{"0SOF(S", typeFingerprint},
	{"0SON&1", typeFingerprint},
	{"0SON&N", typeFingerprint},
	{"0SON&S", typeFingerprint},
	{"0SON&V", typeFingerprint},
	{"0SON(1", typeFingerprint},
	{"0SON(N", typeFingerprint},
	{"0SON(S", typeFingerprint},
	{"0SON(V", typeFingerprint},
	{"0SON;", typeFingerprint},
	{"0SONC", typeFingerprint},
	{"0SONO", typeFingerprint},
	{"0SONO1", typeFingerprint},
	{"0SONOF", typeFingerprint},
	{"0SONON", typeFingerprint},
	{"0SONOS", typeFingerprint},
	{"0SONOV", typeFingerprint},
	{"0SONU", typeFingerprint},
	{"0SONUC", typeFingerprint},
	{"0SONUE", typeFingerprint},
	{"0SOS", typeFingerprint},
	{"0SOS&1", typeFingerprint},
	{"0SOS&N", typeFingerprint},
	{"0SOS&S", typeFingerprint},
	{"0SOS&V", typeFingerprint},
	{"0SOS(1", typeFingerprint},
	{"0SOS(N", typeFingerprint},
	{"0SOS(S", typeFingerprint},
	{"0SOS(V", typeFingerprint},
	{"0SOS;", typeFingerprint},
	{"0SOSC", typeFingerprint},
	{"0SOSO", typeFingerprint},
	{"0SOSO1", typeFingerprint},
	{"0SOSOF", typeFingerprint},
	{"0SOSON", typeFingerprint},
	{"0SOSOS", typeFingerprint},
	{"0SOSOV", typeFingerprint},
	{"0SOSU", typeFingerprint},
	{"0SOSUC", typeFingerprint},
	{"0SOSUE", typeFingerprint},
	{"0SOV&1", typeFingerprint},
	{"0SOV&N", typeFingerprint},
	{"0SOV&S", typeFingerprint},
	{"0SOV&V", typeFingerprint},
	{"0SOV(1", typeFingerprint},
	{"0SOV(N", typeFingerprint},
	{"0SOV(S", typeFingerprint},
	{"0SOV(V", typeFingerprint},
	{"0SOV;", typeFingerprint},
	{"0SOVC", typeFingerprint},
	{"0SOVO1", typeFingerprint},
	{"0SOVOF", typeFingerprint},
	{"0SOVON", typeFingerprint},
	{"0SOVOS", typeFingerprint},
	{"0SOVOV", typeFingerprint},
	{"0SOVU", typeFingerprint},
	{"0SOVUC", typeFingerprint},
	{"0SOVUE", typeFingerprint},
	{"0ST(", typeFingerprint},
	{"0ST(1", typeFingerprint},
	{"0ST(N", typeFingerprint},
	{"0ST1", typeFingerprint},
	{"0ST1;", typeFingerprint},
	{"0ST;", typeFingerprint},
	{"0STC", typeFingerprint},
	{"0STF", typeFingerprint},
	{"0STF(", typeFingerprint},
	{"0STK", typeFingerprint},
	{"0STKN", typeFingerprint},
	{"0STN", typeFingerprint},
	{"0STN1", typeFingerprint},
	{"0STN1;", typeFingerprint},
	{"0STN1C", typeFingerprint},
	{"0STN;", typeFingerprint},
	{"0STNC", typeFingerprint},
	{"0STNK", typeFingerprint},
	{"0STNN", typeFingerprint},
	{"0STNS", typeFingerprint},
	{"0STNS;", typeFingerprint},
	{"0STNSC", typeFingerprint},
	{"0STO", typeFingerprint},
	{"0STS", typeFingerprint},
	{"0STV", typeFingerprint},
	{"0SU", typeFingerprint},
	{"0SU(", typeFingerprint},
	{"0SU;", typeFingerprint},
	{"0SUC", typeFingerprint},
	{"0SUE", typeFingerprint},
	{"0SUE(", typeFingerprint},
	{"0SUE(1", typeFingerprint},
	{"0SUE(E", typeFingerprint},
	{"0SUE(N", typeFingerprint},
	{"0SUE(S", typeFingerprint},
	{"0SUE1", typeFingerprint},
	{"0SUE1,", typeFingerprint},
	{"0SUE1;", typeFingerprint},
	{"0SUE1C", typeFingerprint},
	{"0SUE1K", typeFingerprint},
	{"0SUE;", typeFingerprint},
	{"0SUEC", typeFingerprint},
	{"0SUEF", typeFingerprint},
	{"0SUEF(", typeFingerprint},
	{"0SUEK", typeFingerprint},
	{"0SUEK1", typeFingerprint},
	{"0SUEK;", typeFingerprint},
	{"0SUEKC", typeFingerprint},
	{"0SUEKF", typeFingerprint},
	{"0SUEKN", typeFingerprint},
	{"0SUEKS", typeFingerprint},
	{"0SUEN", typeFingerprint},
	{"0SUEN1", typeFingerprint},
	{"0SUEN;", typeFingerprint},
	{"0SUENC", typeFingerprint},
	{"0SUENK", typeFingerprint},
	{"0SUENN", typeFingerprint},
	{"0SUENS", typeFingerprint},
	{"0SUEO", typeFingerprint},
	{"0SUEO1", typeFingerprint},
	{"0SUEOK", typeFingerprint},
	{"0SUEON", typeFingerprint},
	{"0SUEOS", typeFingerprint},
	{"0SUES", typeFingerprint},
	{"0SUES1", typeFingerprint},
	{"0SUESC", typeFingerprint},
	{"0SUESK", typeFingerprint},
	{"0SUEV", typeFingerprint},
	{"0SUEV1", typeFingerprint},
	{"0SUEVK", typeFingerprint},
	{"0SUK", typeFingerprint},
	{"0SUO", typeFingerprint},
	{"0SX", typeFingerprint},
	{"0T", typeFingerprint},
	{"0T(", typeFingerprint},
	{"0T(1", typeFingerprint},
	{"0T(N", typeFingerprint},
	{"0T1", typeFingerprint},
	{"0T1;", typeFingerprint},
	{"0T;", typeFingerprint},
	{"0TC", typeFingerprint},
	{"0TF", typeFingerprint},
	{"0TF(", typeFingerprint},
	{"0TK", typeFingerprint},
	{"0TKN", typeFingerprint},
	{"0TN", typeFingerprint},
	{"0TN1", typeFingerprint},
	{"0TN1;", typeFingerprint},
	{"0TN1C", typeFingerprint},
	{"0TN;", typeFingerprint},
	{"0TNC", typeFingerprint},
	{"0TNK", typeFingerprint},
	{"0TNN", typeFingerprint},
	{"0TNS", typeFingerprint},
	{"0TNS;", typeFingerprint},
	{"0TNSC", typeFingerprint},
	{"0TO", typeFingerprint},
	{"0TS", typeFingerprint},
	{"0TV", typeFingerprint},
	{"0U", typeFingerprint},
	{"0U(", typeFingerprint},
	{"0U;", typeFingerprint},
	{"0UC", typeFingerprint},
	{"0UE", typeFingerprint},
	{"0UE(", typeFingerprint},
	{"0UE(1", typeFingerprint},
	{"0UE(E", typeFingerprint},
	{"0UE(N", typeFingerprint},
	{"0UE(S", typeFingerprint},
	{"0UE1", typeFingerprint},
	{"0UE1,", typeFingerprint},
	{"0UE1;", typeFingerprint},
	{"0UE1C", typeFingerprint},
	{"0UE1K", typeFingerprint},
	{"0UE;", typeFingerprint},
	{"0UEC", typeFingerprint},
	{"0UEF", typeFingerprint},
	{"0UEF(", typeFingerprint},
	{"0UEK", typeFingerprint},
	{"0UEK1", typeFingerprint},
	{"0UEK;", typeFingerprint},
	{"0UEKC", typeFingerprint},
	{"0UEKF", typeFingerprint},
	{"0UEKN", typeFingerprint},
	{"0UEKS", typeFingerprint},
	{"0UEN", typeFingerprint},
	{"0UEN1", typeFingerprint},
	{"0UEN;", typeFingerprint},
	{"0UENC", typeFingerprint},
	{"0UENK", typeFingerprint},
	{"0UENN", typeFingerprint},
	{"0UENS", typeFingerprint},
	{"0UEO", typeFingerprint},
	{"0UEO1", typeFingerprint},
	{"0UEOK", typeFingerprint},
	{"0UEON", typeFingerprint},
	{"0UEOS", typeFingerprint},
	{"0UES", typeFingerprint},
	{"0UES1", typeFingerprint},
	{"0UESC", typeFingerprint},
	{"0UESK", typeFingerprint},
	{"0UEV", typeFingerprint},
	{"0UEV1", typeFingerprint},
	{"0UEVK", typeFingerprint},
	{"0UK", typeFingerprint},
	{"0UO", typeFingerprint},
	{"0V", typeFingerprint},
	{"0V&1", typeFingerprint},
	{"0V&1&1", typeFingerprint},
	{"0V&1&N", typeFingerprint},
	{"0V&1&S", typeFingerprint},
	{"0V&1&V", typeFingerprint},
	{"0V&1(1", typeFingerprint},
	{"0V&1(N", typeFingerprint},
	{"0V&1(S", typeFingerprint},
	{"0V&1(V", typeFingerprint},
	{"0V&1;", typeFingerprint},
	{"0V&1C", typeFingerprint},
	{"0V&1O1", typeFingerprint},
	{"0V&1OF", typeFingerprint},
	{"0V&1ON", typeFingerprint},
	{"0V&1OS", typeFingerprint},
	{"0V&1OV", typeFingerprint},
	{"0V&1U", typeFingerprint},
	{"0V&1UC", typeFingerprint},
	{"0V&1UE", typeFingerprint},
	{"0V&N", typeFingerprint},
	{"0V&N&1", typeFingerprint},
	{"0V&N&N", typeFingerprint},
	{"0V&N&S", typeFingerprint},
	{"0V&N&V", typeFingerprint},
	{"0V&N(1", typeFingerprint},
	{"0V&N(N", typeFingerprint},
	{"0V&N(S", typeFingerprint},
	{"0V&N(V", typeFingerprint},
	{"0V&N;", typeFingerprint},
	{"0V&NC", typeFingerprint},
	{"0V&NO1", typeFingerprint},
	{"0V&NOF", typeFingerprint},
	{"0V&NON", typeFingerprint},
	{"0V&NOS", typeFingerprint},
	{"0V&NOV", typeFingerprint},
	{"0V&NU", typeFingerprint},
	{"0V&NUC", typeFingerprint},
	{"0V&NUE", typeFingerprint},
	{"0V&S", typeFingerprint},
	{"0V&S&1", typeFingerprint},
	{"0V&S&N", typeFingerprint},
	{"0V&S&S", typeFingerprint},
	{"0V&S&V", typeFingerprint},
	{"0V&S(1", typeFingerprint},
	{"0V&S(N", typeFingerprint},
	{"0V&S(S", typeFingerprint},
	{"0V&S(V", typeFingerprint},
	{"0V&S;", typeFingerprint},
	{"0V&SC", typeFingerprint},
	{"0V&SO1", typeFingerprint},
	{"0V&SOF", typeFingerprint},
	{"0V&SON", typeFingerprint},
	{"0V&SOS", typeFingerprint},
	{"0V&SOV", typeFingerprint},
	{"0V&SU", typeFingerprint},
	{"0V&SUC", typeFingerprint},
	{"0V&SUE", typeFingerprint},
	{"0V&V", typeFingerprint},
	{"0V&V&1", typeFingerprint},
	{"0V&V&N", typeFingerprint},
	{"0V&V&S", typeFingerprint},
	{"0V&V&V", typeFingerprint},
	{"0V&V(1", typeFingerprint},
	{"0V&V(N", typeFingerprint},
	{"0V&V(S", typeFingerprint},
	{"0V&V(V", typeFingerprint},
	{"0V&V;", typeFingerprint},
	{"0V&VC", typeFingerprint},
	{"0V&VO1", typeFingerprint},
	{"0V&VOF", typeFingerprint},
	{"0V&VON", typeFingerprint},
	{"0V&VOS", typeFingerprint},
	{"0V&VOV", typeFingerprint},
	{"0V&VU", typeFingerprint},
	{"0V&VUC", typeFingerprint},
	{"0V&VUE", typeFingerprint},
	{"0V,1", typeFingerprint},
	{"0V,N", typeFingerprint},
	{"0V,V", typeFingerprint},
	{"0V;", typeFingerprint},
	{"0V;(", typeFingerprint},
	{"0V;,", typeFingerprint},
	{"0V;1", typeFingerprint},
	{"0V;;", typeFingerprint},
	{"0V;B", typeFingerprint},
	{"0V;C", typeFingerprint},
	{"0V;E", typeFingerprint},
	{"0V;E(", typeFingerprint},
	{"0V;E(1", typeFingerprint},
	{"0V;E(F", typeFingerprint},
	{"0V;E(N", typeFingerprint},
	{"0V;E(S", typeFingerprint},
	{"0V;E(V", typeFingerprint},
	{"0V;E1", typeFingerprint},
	{"0V;E1;", typeFingerprint},
	{"0V;E1C", typeFingerprint},
	{"0V;E1K", typeFingerprint},
	{"0V;EB", typeFingerprint},
	{"0V;EF", typeFingerprint},
	{"0V;EF(", typeFingerprint},
	{"0V;EF1", typeFingerprint},
	{"0V;EFN", typeFingerprint},
	{"0V;EFS", typeFingerprint},
	{"0V;EFV", typeFingerprint},
	{"0V;EK", typeFingerprint},
	{"0V;EK1", typeFingerprint},
	{"0V;EKF", typeFingerprint},
	{"0V;EKN", typeFingerprint},
	{"0V;EKS", typeFingerprint},
	{"0V;EKV", typeFingerprint},
	{"0V;EN", typeFingerprint},
	{"0V;EN;", typeFingerprint},
	{"0V;ENC", typeFingerprint},
	{"0V;ENK", typeFingerprint},
	{"0V;EO", typeFingerprint},
	{"0V;EO1", typeFingerprint},
	{"0V;EOK", typeFingerprint},
	{"0V;EON", typeFingerprint},
	{"0V;EOS", typeFingerprint},
	{"0V;ES", typeFingerprint},
	{"0V;ES;", typeFingerprint},
	{"0V;ESC", typeFingerprint},
	{"0V;ESK", typeFingerprint},
	{"0V;EV", typeFingerprint},
	{"0V;EVK", typeFingerprint},
	{"0V;F", typeFingerprint},
	{"0V;K", typeFingerprint},
	{"0V;N", typeFingerprint},
	{"0V;S", typeFingerprint},
	{"0V;T", typeFingerprint},
	{"0V;T(", typeFingerprint},
	{"0V;T(1", typeFingerprint},
	{"0V;T(N", typeFingerprint},
	{"0V;T1", typeFingerprint},
	{"0V;T1;", typeFingerprint},
	{"0V;T;", typeFingerprint},
	{"0V;TC", typeFingerprint},
	{"0V;TF", typeFingerprint},
	{"0V;TF(", typeFingerprint},
	{"0V;TK", typeFingerprint},
	{"0V;TKN", typeFingerprint},
	{"0V;TN", typeFingerprint},
	{"0V;TN1", typeFingerprint},
	{"0V;TN;", typeFingerprint},
	{"0V;TNC", typeFingerprint},
	{"0V;TNK", typeFingerprint},
	{"0V;TNN", typeFingerprint},
	{"0V;TNS", typeFingerprint},
	{"0V;TO", typeFingerprint},
	{"0V;TS", typeFingerprint},
	{"0V;TV", typeFingerprint},
	{"0V;U", typeFingerprint},
	{"0VAN", typeFingerprint},
	{"0VANC", typeFingerprint},
	{"0VAT", typeFingerprint},
	{"0VAT;", typeFingerprint},
	{"0VATC", typeFingerprint},
	{"0VB", typeFingerprint},
	{"0VB1C", typeFingerprint},
	{"0VBC", typeFingerprint},
	{"0VC", typeFingerprint},
	{"0VC;", typeFingerprint},
	{"0VCC", typeFingerprint},
	{"0VE", typeFingerprint},
	{"0VE(", typeFingerprint},
	{"0VE(1", typeFingerprint},
	{"0VE(1)", typeFingerprint},
	{"0VE(F", typeFingerprint},
	{"0VE(N", typeFingerprint},
	{"0VE(N)", typeFingerprint},
	{"0VE(S", typeFingerprint},
	{"0VE(S)", typeFingerprint},
	{"0VE(V", typeFingerprint},
	{"0VE1", typeFingerprint},
	{"0VE1;", typeFingerprint},
	{"0VE1C", typeFingerprint},
	{"0VE1K", typeFingerprint},
	{"0VEB", typeFingerprint},
	{"0VEF", typeFingerprint},
	{"0VEF(", typeFingerprint},
	{"0VEF(1", typeFingerprint},
	{"0VEF(N", typeFingerprint},
	{"0VEF(S", typeFingerprint},
	{"0VEF(V", typeFingerprint},
	{"0VEF1", typeFingerprint},
	{"0VEFN", typeFingerprint},
	{"0VEFS", typeFingerprint},
	{"0VEFV", typeFingerprint},
	{"0VEK", typeFingerprint},
	{"0VEK1", typeFingerprint},
	{"0VEK1K", typeFingerprint},
	{"0VEKF", typeFingerprint},
	{"0VEKN", typeFingerprint},
	{"0VEKNK", typeFingerprint},
	{"0VEKNN", typeFingerprint},
	{"0VEKS", typeFingerprint},
	{"0VEKUE", typeFingerprint},
	{"0VEKV", typeFingerprint},
	{"0VEN", typeFingerprint},
	{"0VEN;", typeFingerprint},
	{"0VENC", typeFingerprint},
	{"0VENK", typeFingerprint},
	{"0VENKF", typeFingerprint},
	{"0VENKN", typeFingerprint},
	{"0VEO", typeFingerprint},
	{"0VEO1", typeFingerprint},
	{"0VEOK", typeFingerprint},
	{"0VEOKN", typeFingerprint},
	{"0VEON", typeFingerprint},
	{"0VEOS", typeFingerprint},
	{"0VES", typeFingerprint},
	{"0VES;", typeFingerprint},
	{"0VESC", typeFingerprint},
	{"0VESK", typeFingerprint},
	{"0VEV", typeFingerprint},
	{"0VEVK", typeFingerprint},
	{"0VF(", typeFingerprint},
	{"0VF(1", typeFingerprint},
	{"0VK", typeFingerprint},
	{"0VK(", typeFingerprint},
	{"0VK)", typeFingerprint},
	{"0VK1", typeFingerprint},
	{"0VK;", typeFingerprint},
	{"0VKB", typeFingerprint},
	{"0VKC", typeFingerprint},
	{"0VKE", typeFingerprint},
	{"0VKEK", typeFingerprint},
	{"0VKF", typeFingerprint},
	{"0VKK", typeFingerprint},
	{"0VKN", typeFingerprint},
	{"0VKNC", typeFingerprint},
	{"0VKNK", typeFingerprint},
	{"0VKS", typeFingerprint},
	{"0VKUE", typeFingerprint},
	{"0VKV", typeFingerprint},
	{"0VO1C", typeFingerprint},
	{"0VONC", typeFingerprint},
	{"0VOSC", typeFingerprint},
	{"0VOV;", typeFingerprint},
	{"0VT(", typeFingerprint},
	{"0VT(1", typeFingerprint},
	{"0VT(N", typeFingerprint},
	{"0VT1", typeFingerprint},
	{"0VT1;", typeFingerprint},
	{"0VT;", typeFingerprint},
	{"0VTC", typeFingerprint},
	{"0VTF", typeFingerprint},
	{"0VTF(", typeFingerprint},
	{"0VTK", typeFingerprint},
	{"0VTKN", typeFingerprint},
	{"0VTN", typeFingerprint},
	{"0VTN1", typeFingerprint},
	{"0VTN1;", typeFingerprint},
	{"0VTN1C", typeFingerprint},
	{"0VTN;", typeFingerprint},
	{"0VTNC", typeFingerprint},
	{"0VTNK", typeFingerprint},
	{"0VTNN", typeFingerprint},
	{"0VTNS", typeFingerprint},
	{"0VTNS;", typeFingerprint},
	{"0VTNSC", typeFingerprint},
	{"0VTO", typeFingerprint},
	{"0VTS", typeFingerprint},
	{"0VTV", typeFingerprint},
	{"0VU", typeFingerprint},
	{"0VU(", typeFingerprint},
	{"0VU;", typeFingerprint},
	{"0VUC", typeFingerprint},
	{"0VUE", typeFingerprint},
	{"0VUE(", typeFingerprint},
	{"0VUE(1", typeFingerprint},
	{"0VUE(E", typeFingerprint},
	{"0VUE(N", typeFingerprint},
	{"0VUE(S", typeFingerprint},
	{"0VUE1", typeFingerprint},
	{"0VUE1,", typeFingerprint},
	{"0VUE1;", typeFingerprint},
	{"0VUE1C", typeFingerprint},
	{"0VUE1K", typeFingerprint},
	{"0VUE;", typeFingerprint},
	{"0VUEC", typeFingerprint},
	{"0VUEF", typeFingerprint},
	{"0VUEF(", typeFingerprint},
	{"0VUEK", typeFingerprint},
	{"0VUEK1", typeFingerprint},
	{"0VUEK;", typeFingerprint},
	{"0VUEKC", typeFingerprint},
	{"0VUEKF", typeFingerprint},
	{"0VUEKN", typeFingerprint},
	{"0VUEKS", typeFingerprint},
	{"0VUEN", typeFingerprint},
	{"0VUEN1", typeFingerprint},
	{"0VUEN;", typeFingerprint},
	{"0VUENC", typeFingerprint},
	{"0VUENK", typeFingerprint},
	{"0VUENN", typeFingerprint},
	{"0VUENS", typeFingerprint},
	{"0VUEO", typeFingerprint},
	{"0VUEO1", typeFingerprint},
	{"0VUEOK", typeFingerprint},
	{"0VUEON", typeFingerprint},
	{"0VUEOS", typeFingerprint},
	{"0VUES", typeFingerprint},
	{"0VUES1", typeFingerprint},
	{"0VUESC", typeFingerprint},
	{"0VUESK", typeFingerprint},
	{"0VUEV", typeFingerprint},
	{"0VUEV1", typeFingerprint},
	{"0VUEVK", typeFingerprint},
	{"0VUK", typeFingerprint},
	{"0VUO", typeFingerprint},
	{"0X", typeFingerprint},
	{"::", typeOperator},
	{":=", typeOperator},
	{"<<", typeOperator},
	{"<=", typeOperator},
	{"<>", typeOperator},
	{"==", typeOperator},
	{">=", typeOperator},
	{">>", typeOperator},
	{"ABS", typeFunction},
	{"ACOS", typeFunction},
	{"ALL", typeOperator},
	{"ALTER", typeExpression},
	{"AND", typeLogicOperator},
	{"ANY", typeOperator},
	{"AS", typeKeyword},
	{"ASC", typeKeyword},
	{"ASCII", typeFunction},
	{"ASIN", typeFunction},
	{"ATAN", typeFunction},
	{"AVG", typeFunction},
	{"BACKUP", typeTSQL},
	{"BENCHMARK", typeFunction},
	{"BETWEEN", typeOperator},
	{"BIGINT", typeSQLType},
	{"BIN", typeFunction},
	{"BINARY", typeSQLType},
	{"BIT_AND", typeFunction},
	{"BIT_COUNT", typeFunction},
	{"BIT_LENGTH", typeFunction},
	{"BIT_OR", typeFunction},
	{"BIT_XOR", typeFunction},
	{"BOOLEAN", typeSQLType},
	{"BULK INSERT", typeTSQL},
	{"CALL", typeExpression},
	{"CASCADE", typeKeyword},
	{"CASE", typeExpression},
	{"CAST", typeFunction},
	{"CEIL", typeFunction},
	{"CEILING", typeFunction},
	{"CHAR", typeFunction},
	{"CHARACTER_LENGTH", typeFunction},
	{"CHARSET", typeFunction},
	{"CHAR_LENGTH", typeFunction},
	{"CHR", typeFunction},
	{"COALESCE", typeFunction},
	{"COERCIBILITY", typeFunction},
	{"COLLATE", typeCollate},
	{"COMPRESS", typeFunction},
	{"CONCAT", typeFunction},
	{"CONCAT_WS", typeFunction},
	{"CONV", typeFunction},
	{"CONVERT", typeFunction},
	{"COS", typeFunction},
	{"COT", typeFunction},
	{"COUNT", typeFunction},
	{"CRC32", typeFunction},
	{"CREATE", typeExpression},
	{"CROSS JOIN", typeKeyword},
	{"CURDATE", typeFunction},
	{"CURTIME", typeFunction},
	{"DATETIME", typeSQLType},
	{"DATE_ADD", typeFunction},
	{"DATE_FORMAT", typeFunction},
	{"DATE_SUB", typeFunction},
	{"DAY", typeFunction},
	{"DAYNAME", typeFunction},
	{"DAYOFMONTH", typeFunction},
	{"DAYOFWEEK", typeFunction},
	{"DAYOFYEAR", typeFunction},
	{"DBCC", typeTSQL},
	{"DECIMAL", typeSQLType},
	{"DECLARE", typeExpression},
	{"DECODE", typeFunction},
	{"DEGREES", typeFunction},
	{"DELAYED", typeSQLType},
	{"DELETE", typeExpression},
	{"DELETE FROM", typeExpression},
	{"DESC", typeKeyword},
	{"DISTINCT", typeKeyword},
	{"DISTINCTROW", typeKeyword},
	{"DIV", typeOperator},
	{"DOUBLE", typeSQLType},
	{"DROP", typeExpression},
	{"ELSE", typeKeyword},
	{"ENCODE", typeFunction},
	{"ENCRYPT", typeFunction},
	{"END", typeKeyword},
	{"EXCEPT", typeUnion},
	{"EXEC", typeExpression},
	{"EXECUTE", typeExpression},
	{"EXISTS", typeKeyword},
	{"EXP", typeFunction},
	{"EXPORT_SET", typeFunction},
	{"EXTRACT", typeFunction},
	{"EXTRACTVALUE", typeFunction},
	{"FALSE", typeNumber},
	{"FETCH", typeKeyword},
	{"FIELD", typeFunction},
	{"FIND_IN_SET", typeFunction},
	{"FLOAT", typeSQLType},
	{"FLOOR", typeFunction},
	{"FOR UPDATE", typeKeyword},
	{"FOREIGN KEY", typeKeyword},
	{"FORMAT", typeFunction},
	{"FOUND_ROWS", typeFunction},
	{"FROM", typeKeyword},
	{"FROM_BASE64", typeFunction},
	{"FROM_DAYS", typeFunction},
	{"FROM_UNIXTIME", typeFunction},
	{"FULL JOIN", typeKeyword},
	{"GET_LOCK", typeFunction},
	{"GOTO", typeTSQL},
	{"GRANT", typeExpression},
	{"GREATEST", typeFunction},
	{"GROUP BY", typeGroup},
	{"GROUP_CONCAT", typeFunction},
	{"HANDLER", typeExpression},
	{"HAVING", typeKeyword},
	{"HEX", typeFunction},
	{"HIGH_PRIORITY", typeSQLType},
	{"HOUR", typeFunction},
	{"IDENTIFIED BY", typeKeyword},
	{"IF", typeFunction},
	{"IFNULL", typeFunction},
	{"IGNORE", typeSQLType},
	{"ILIKE", typeOperator},
	{"IN", typeKeyword},
	{"INDEX", typeKeyword},
	{"INET_ATON", typeFunction},
	{"INET_NTOA", typeFunction},
	{"INNER JOIN", typeKeyword},
	{"INSERT", typeExpression},
	{"INSERT INTO", typeExpression},
	{"INSTR", typeFunction},
	{"INT", typeSQLType},
	{"INTEGER", typeSQLType},
	{"INTERSECT", typeUnion},
	{"INTERSECT ALL", typeUnion},
	{"INTERVAL", typeFunction},
	{"INTO", typeKeyword},
	{"INTO DUMPFILE", typeKeyword},
	{"INTO OUTFILE", typeKeyword},
	{"IS", typeOperator},
	{"IS NOT", typeOperator},
	{"ISNULL", typeFunction},
	{"JOIN", typeKeyword},
	{"KILL", typeTSQL},
	{"LAST_INSERT_ID", typeFunction},
	{"LCASE", typeFunction},
	{"LEAST", typeFunction},
	{"LEFT", typeFunction},
	{"LEFT JOIN", typeKeyword},
	{"LENGTH", typeFunction},
	{"LIKE", typeOperator},
	{"LIMIT", typeGroup},
	{"LN", typeFunction},
	{"LOAD DATA", typeExpression},
	{"LOAD XML", typeExpression},
	{"LOAD_FILE", typeFunction},
	{"LOCATE", typeFunction},
	{"LOCK IN SHARE MODE", typeKeyword},
	{"LOG", typeFunction},
	{"LOG10", typeFunction},
	{"LOG2", typeFunction},
	{"LOWER", typeFunction},
	{"LOW_PRIORITY", typeSQLType},
	{"LPAD", typeFunction},
	{"LTRIM", typeFunction},
	{"MAKE_SET", typeFunction},
	{"MASTER_POS_WAIT", typeFunction},
	{"MAX", typeFunction},
	{"MD5", typeFunction},
	{"MEDIUMINT", typeSQLType},
	{"MERGE", typeExpression},
	{"MID", typeFunction},
	{"MIN", typeFunction},
	{"MINUS", typeUnion},
	{"MINUTE", typeFunction},
	{"MOD", typeOperator},
	{"MONTH", typeFunction},
	{"MONTHNAME", typeFunction},
	{"NAME_CONST", typeFunction},
	{"NATURAL JOIN", typeKeyword},
	{"NCHAR", typeSQLType},
	{"NOT", typeOperator},
	{"NOT BETWEEN", typeOperator},
	{"NOT EXISTS", typeKeyword},
	{"NOT ILIKE", typeOperator},
	{"NOT IN", typeKeyword},
	{"NOT LIKE", typeOperator},
	{"NOT REGEXP", typeOperator},
	{"NOT RLIKE", typeOperator},
	{"NOT SIMILAR TO", typeOperator},
	{"NOW", typeFunction},
	{"NULL", typeNumber},
	{"NULLIF", typeFunction},
	{"NUMERIC", typeSQLType},
	{"NVARCHAR", typeSQLType},
	{"OCT", typeFunction},
	{"OCTET_LENGTH", typeFunction},
	{"OFFSET", typeGroup},
	{"ON", typeKeyword},
	{"OPENQUERY", typeTSQL},
	{"OPENROWSET", typeTSQL},
	{"OR", typeLogicOperator},
	{"ORD", typeFunction},
	{"ORDER BY", typeGroup},
	{"OUTER JOIN", typeKeyword},
	{"PARTITION BY", typeGroup},
	{"PERIOD_ADD", typeFunction},
	{"PERIOD_DIFF", typeFunction},
	{"PG_SLEEP", typeFunction},
	{"PI", typeFunction},
	{"POSITION", typeFunction},
	{"POW", typeFunction},
	{"POWER", typeFunction},
	{"PRIMARY KEY", typeKeyword},
	{"PRINT", typeTSQL},
	{"PROCEDURE ANALYSE", typeGroup},
	{"QUARTER", typeFunction},
	{"QUICK", typeSQLType},
	{"QUOTE", typeFunction},
	{"RADIANS", typeFunction},
	{"RAND", typeFunction},
	{"RANDOM", typeFunction},
	{"RANDOMBLOB", typeFunction},
	{"READTEXT", typeTSQL},
	{"REAL", typeSQLType},
	{"REGEXP", typeOperator},
	{"RELEASE_LOCK", typeFunction},
	{"RENAME", typeExpression},
	{"REPEAT", typeFunction},
	{"REPLACE", typeExpression},
	{"RESTORE", typeTSQL},
	{"RETURNING", typeKeyword},
	{"REVERSE", typeFunction},
	{"REVOKE", typeExpression},
	{"RIGHT", typeFunction},
	{"RIGHT JOIN", typeKeyword},
	{"RLIKE", typeOperator},
	{"ROUND", typeFunction},
	{"ROW_COUNT", typeFunction},
	{"RPAD", typeFunction},
	{"RTRIM", typeFunction},
	{"SCHEMA", typeFunction},
	{"SECOND", typeFunction},
	{"SEC_TO_TIME", typeFunction},
	{"SELECT", typeExpression},
	{"SESSION_USER", typeFunction},
	{"SET", typeExpression},
	{"SHA", typeFunction},
	{"SHA1", typeFunction},
	{"SHA2", typeFunction},
	{"SHUTDOWN", typeTSQL},
	{"SIGN", typeFunction},
	{"SIGNED", typeSQLType},
	{"SIMILAR TO", typeOperator},
	{"SIN", typeFunction},
	{"SLEEP", typeFunction},
	{"SMALLINT", typeSQLType},
	{"SOME", typeOperator},
	{"SOUNDEX", typeFunction},
	{"SOUNDS LIKE", typeOperator},
	{"SPACE", typeFunction},
	{"SQL_BIG_RESULT", typeSQLType},
	{"SQL_CALC_FOUND_ROWS", typeSQLType},
	{"SQL_SMALL_RESULT", typeSQLType},
	{"SQRT", typeFunction},
	{"STDDEV", typeFunction},
	{"STRAIGHT_JOIN", typeKeyword},
	{"STRCMP", typeFunction},
	{"STR_TO_DATE", typeFunction},
	{"SUBDATE", typeFunction},
	{"SUBSTR", typeFunction},
	{"SUBSTRING", typeFunction},
	{"SUBSTRING_INDEX", typeFunction},
	{"SUM", typeFunction},
	{"SYSDATE", typeFunction},
	{"SYSTEM_USER", typeFunction},
	{"TABLE", typeKeyword},
	{"TAN", typeFunction},
	{"TEMPORARY", typeSQLType},
	{"THEN", typeKeyword},
	{"TIMEDIFF", typeFunction},
	{"TIMESTAMP", typeSQLType},
	{"TIME_FORMAT", typeFunction},
	{"TIME_TO_SEC", typeFunction},
	{"TINYINT", typeSQLType},
	{"TO PROGRAM", typeKeyword},
	{"TOP", typeKeyword},
	{"TO_BASE64", typeFunction},
	{"TO_DAYS", typeFunction},
	{"TO_SECONDS", typeFunction},
	{"TRIM", typeFunction},
	{"TRUE", typeNumber},
	{"TRUNCATE", typeExpression},
	{"UCASE", typeFunction},
	{"UNCOMPRESS", typeFunction},
	{"UNHEX", typeFunction},
	{"UNION", typeUnion},
	{"UNION ALL", typeUnion},
	{"UNION DISTINCT", typeUnion},
	{"UNIX_TIMESTAMP", typeFunction},
	{"UNSIGNED", typeSQLType},
	{"UPDATE", typeExpression},
	{"UPDATETEXT", typeTSQL},
	{"UPDATEXML", typeFunction},
	{"UPPER", typeFunction},
	{"USE", typeTSQL},
	{"USING", typeKeyword},
	{"UTC_DATE", typeFunction},
	{"UTC_TIME", typeFunction},
	{"UTC_TIMESTAMP", typeFunction},
	{"UUID", typeFunction},
	{"VALUES", typeKeyword},
	{"VARBINARY", typeSQLType},
	{"VARCHAR", typeSQLType},
	{"VARIANCE", typeFunction},
	{"VERSION", typeFunction},
	{"VIEW", typeKeyword},
	{"WAITFOR", typeTSQL},
	{"WEEK", typeFunction},
	{"WEEKDAY", typeFunction},
	{"WEEKOFYEAR", typeFunction},
	{"WHEN", typeKeyword},
	{"WHERE", typeKeyword},
	{"WHILE", typeTSQL},
	{"WRITETEXT", typeTSQL},
	{"XOR", typeLogicOperator},
	{"XP_CMDSHELL", typeFunction},
	{"XP_DIRTREE", typeFunction},
	{"YEAR", typeFunction},
	{"YEARWEEK", typeFunction},
	{"^=", typeOperator},
	{"|/", typeOperator},
	{"|=", typeOperator},
	{"||", typeLogicOperator},
	{"~*", typeOperator},
}

